package models

// CreateChannelRequest creates a channel (outer API surface; channels are
// read-only configuration to the pipeline itself).
type CreateChannelRequest struct {
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	PlatformID    string         `json:"platform_id,omitempty"`
	Persona       map[string]any `json:"persona,omitempty"`
	StyleGuide    map[string]any `json:"style_guide,omitempty"`
	VoiceProfile  *VoiceProfile  `json:"voice_profile,omitempty"`
	AvatarProfile *AvatarProfile `json:"avatar_profile,omitempty"`
	AutoAdvance   bool           `json:"auto_advance,omitempty"`
}

// CreateEpisodeRequest creates an episode in the idea state.
type CreateEpisodeRequest struct {
	ChannelID   string     `json:"channel_id"`
	Title       string     `json:"title,omitempty"`
	Idea        IdeaRecord `json:"idea"`
	IdeaSource  string     `json:"idea_source,omitempty"` // defaults to manual
	Priority    int        `json:"priority,omitempty"`    // -1..2
	AutoAdvance *bool      `json:"auto_advance,omitempty"`
}

// CreateJobRequest creates a durable job row (queued).
type CreateJobRequest struct {
	EpisodeID   string
	Stage       string
	InputParams WorkParams
	MaxRetries  int // 0 means default
}

// CreateAssetRequest records a produced artifact.
type CreateAssetRequest struct {
	EpisodeID     string
	Type          string
	URI           string
	Bucket        string
	Key           string
	Version       int
	Provider      string
	ProviderJobID string
	MimeType      string
	SizeBytes     int64
	DurationS     float64
	Metadata      AssetMetadata
	IsPrimary     bool
}
