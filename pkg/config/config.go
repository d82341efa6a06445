// Package config holds the typed runtime configuration. Values come from
// environment variables (plus an optional .env loaded in main); each section
// has a Default constructor so tests can build a config without an
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration.
type Config struct {
	Text    *TextProviderConfig
	Speech  *SpeechProviderConfig
	Avatar  *AvatarProviderConfig
	Video   *VideoProviderConfig
	Storage *StorageConfig
	Queue   *QueueConfig

	Retention *RetentionConfig
}

// Load builds the configuration from the environment. The text provider and
// object store are required. Speech, avatar, and video are optional; stages
// that need an absent provider fail with a validation error when invoked.
func Load() (*Config, error) {
	text, err := loadTextConfig()
	if err != nil {
		return nil, err
	}
	storage, err := loadStorageConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		Text:      text,
		Speech:    loadSpeechConfig(),
		Avatar:    loadAvatarConfig(),
		Video:     loadVideoConfig(),
		Storage:   storage,
		Queue:     loadQueueConfig(),
		Retention: loadRetentionConfig(),
	}, nil
}

// SpeechEnabled reports whether the speech provider is configured.
func (c *Config) SpeechEnabled() bool { return c.Speech != nil && c.Speech.APIKey != "" }

// AvatarEnabled reports whether the avatar-video provider is configured.
func (c *Config) AvatarEnabled() bool { return c.Avatar != nil && c.Avatar.APIKey != "" }

// VideoEnabled reports whether the text/image-to-video provider is configured.
func (c *Config) VideoEnabled() bool { return c.Video != nil && c.Video.APIKey != "" }

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}
