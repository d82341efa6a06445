package config

import (
	"os"
	"time"
)

// RetrySettings controls the shared provider retry loop. Backoff grows as
// base*2^attempt capped at max, multiplied by a random jitter factor.
type RetrySettings struct {
	MaxRetries  int
	BackoffBase time.Duration
	BackoffMax  time.Duration
}

// DefaultRetrySettings returns the retry defaults used by every provider.
func DefaultRetrySettings() RetrySettings {
	return RetrySettings{
		MaxRetries:  3,
		BackoffBase: 1 * time.Second,
		BackoffMax:  60 * time.Second,
	}
}

// PollSettings controls submit-then-poll providers.
type PollSettings struct {
	Interval    time.Duration
	MaxPollTime time.Duration
}

// DefaultPollSettings returns the polling defaults for async video providers.
func DefaultPollSettings() PollSettings {
	return PollSettings{
		Interval:    10 * time.Second,
		MaxPollTime: 600 * time.Second,
	}
}

// TextProviderConfig configures the chat-completion provider used by the
// planning, scripting, and metadata stages.
type TextProviderConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Retry   RetrySettings

	// Default model per text stage; a job's params.model overrides these.
	PlanningModel  string
	ScriptingModel string
	MetadataModel  string

	InputCostPer1K  float64
	OutputCostPer1K float64
}

func loadTextConfig() (*TextProviderConfig, error) {
	apiKey, err := requireEnv("TEXT_API_KEY")
	if err != nil {
		return nil, err
	}
	return &TextProviderConfig{
		APIKey:          apiKey,
		BaseURL:         getEnv("TEXT_BASE_URL", "https://api.openai.com/v1"),
		Timeout:         getEnvDuration("TEXT_TIMEOUT", 60*time.Second),
		Retry:           loadRetrySettings("TEXT"),
		PlanningModel:   getEnv("TEXT_PLANNING_MODEL", "gpt-4o"),
		ScriptingModel:  getEnv("TEXT_SCRIPTING_MODEL", "gpt-4o"),
		MetadataModel:   getEnv("TEXT_METADATA_MODEL", "gpt-4o-mini"),
		InputCostPer1K:  getEnvFloat("TEXT_INPUT_COST_PER_1K", 0.0025),
		OutputCostPer1K: getEnvFloat("TEXT_OUTPUT_COST_PER_1K", 0.01),
	}, nil
}

// SpeechProviderConfig configures the text-to-speech provider for the audio
// stage. Optional: absent when SPEECH_API_KEY is unset.
type SpeechProviderConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Retry   RetrySettings

	CostPerChar float64
}

func loadSpeechConfig() *SpeechProviderConfig {
	apiKey := os.Getenv("SPEECH_API_KEY")
	if apiKey == "" {
		return nil
	}
	return &SpeechProviderConfig{
		APIKey:      apiKey,
		BaseURL:     getEnv("SPEECH_BASE_URL", "https://api.elevenlabs.io/v1"),
		Timeout:     getEnvDuration("SPEECH_TIMEOUT", 120*time.Second),
		Retry:       loadRetrySettings("SPEECH"),
		CostPerChar: getEnvFloat("SPEECH_COST_PER_CHAR", 0.00003),
	}
}

// AvatarProviderConfig configures the talking-head video provider for the
// avatar stage. Optional.
type AvatarProviderConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Retry   RetrySettings
	Poll    PollSettings

	CostPerMinute float64
}

func loadAvatarConfig() *AvatarProviderConfig {
	apiKey := os.Getenv("AVATAR_API_KEY")
	if apiKey == "" {
		return nil
	}
	return &AvatarProviderConfig{
		APIKey:        apiKey,
		BaseURL:       getEnv("AVATAR_BASE_URL", "https://api.heygen.com/v2"),
		Timeout:       getEnvDuration("AVATAR_TIMEOUT", 60*time.Second),
		Retry:         loadRetrySettings("AVATAR"),
		Poll:          loadPollSettings("AVATAR"),
		CostPerMinute: getEnvFloat("AVATAR_COST_PER_MINUTE", 0.5),
	}
}

// VideoProviderConfig configures the generative b-roll video provider.
// Optional.
type VideoProviderConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Retry   RetrySettings
	Poll    PollSettings

	CostPerSecond float64
	ClipLimit     int
}

func loadVideoConfig() *VideoProviderConfig {
	apiKey := os.Getenv("VIDEO_API_KEY")
	if apiKey == "" {
		return nil
	}
	return &VideoProviderConfig{
		APIKey:        apiKey,
		BaseURL:       getEnv("VIDEO_BASE_URL", "https://api.runwayml.com/v1"),
		Timeout:       getEnvDuration("VIDEO_TIMEOUT", 60*time.Second),
		Retry:         loadRetrySettings("VIDEO"),
		Poll:          loadPollSettings("VIDEO"),
		CostPerSecond: getEnvFloat("VIDEO_COST_PER_SECOND", 0.05),
		ClipLimit:     getEnvInt("VIDEO_CLIP_LIMIT", 8),
	}
}

func loadRetrySettings(prefix string) RetrySettings {
	d := DefaultRetrySettings()
	return RetrySettings{
		MaxRetries:  getEnvInt(prefix+"_MAX_RETRIES", d.MaxRetries),
		BackoffBase: getEnvDuration(prefix+"_BACKOFF_BASE", d.BackoffBase),
		BackoffMax:  getEnvDuration(prefix+"_BACKOFF_MAX", d.BackoffMax),
	}
}

func loadPollSettings(prefix string) PollSettings {
	d := DefaultPollSettings()
	return PollSettings{
		Interval:    getEnvDuration(prefix+"_POLL_INTERVAL", d.Interval),
		MaxPollTime: getEnvDuration(prefix+"_MAX_POLL_TIME", d.MaxPollTime),
	}
}
