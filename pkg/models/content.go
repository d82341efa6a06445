package models

// IdeaRecord is the seed of an episode: what to make and where the idea came
// from. Stored on the episode's idea column.
type IdeaRecord struct {
	Brief  string `json:"brief"`
	Source string `json:"source,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// PlanSection is one content section of a structured plan.
type PlanSection struct {
	Title             string   `json:"title"`
	Summary           string   `json:"summary,omitempty"`
	TalkingPoints     []string `json:"talking_points,omitempty"`
	BrollSuggestions  []string `json:"broll_suggestions,omitempty"`
	EstDurationSecond float64  `json:"est_duration_s,omitempty"`
}

// PlanRecord is the planning stage output: a structured outline the scripting
// stage expands into a full script.
type PlanRecord struct {
	Hook             string        `json:"hook"`
	Sections         []PlanSection `json:"sections"`
	CTAs             []string      `json:"ctas,omitempty"`
	BrollSuggestions []string      `json:"broll_suggestions,omitempty"`
	EstDurationS     float64       `json:"est_duration_s,omitempty"`
}

// ScriptMetadata summarises the scripting stage output.
type ScriptMetadata struct {
	WordCount      int     `json:"word_count"`
	EstDurationS   float64 `json:"est_duration_s"`
	AvatarSegments int     `json:"avatar_segments"`
	VoiceoverParts int     `json:"voiceover_parts"`
	BrollCues      int     `json:"broll_cues"`
}

// EpisodeMeta is the metadata stage output (SEO surface of the episode).
type EpisodeMeta struct {
	TitleVariants   []string `json:"title_variants"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags,omitempty"`
	ThumbnailPrompt string   `json:"thumbnail_prompt,omitempty"`
}

// VoiceProfile configures the speech-synthesis provider for a channel.
type VoiceProfile struct {
	VoiceID string  `json:"voice_id"`
	Model   string  `json:"model,omitempty"`
	Speed   float64 `json:"speed,omitempty"`
	Format  string  `json:"format,omitempty"` // defaults to mp3
}

// AvatarProfile configures the avatar-video provider for a channel.
type AvatarProfile struct {
	AvatarID   string `json:"avatar_id"`
	Background string `json:"background,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}
