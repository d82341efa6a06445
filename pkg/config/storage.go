package config

import "time"

// StorageConfig configures the S3-compatible object store that holds stage
// artifacts. Endpoint and path-style addressing accommodate MinIO in
// development and tests.
type StorageConfig struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	AssetsBucket    string
	ScriptsBucket   string
	UsePathStyle    bool

	// PresignTTL is the default lifetime of presigned URLs. Callers may
	// request a different TTL; the gateway clamps it to [1m, 24h].
	PresignTTL time.Duration
}

func loadStorageConfig() (*StorageConfig, error) {
	accessKey, err := requireEnv("STORAGE_ACCESS_KEY_ID")
	if err != nil {
		return nil, err
	}
	secretKey, err := requireEnv("STORAGE_SECRET_ACCESS_KEY")
	if err != nil {
		return nil, err
	}
	return &StorageConfig{
		Endpoint:        getEnv("STORAGE_ENDPOINT", ""),
		Region:          getEnv("STORAGE_REGION", "us-east-1"),
		AccessKeyID:     accessKey,
		SecretAccessKey: secretKey,
		AssetsBucket:    getEnv("STORAGE_ASSETS_BUCKET", "showforge-assets"),
		ScriptsBucket:   getEnv("STORAGE_SCRIPTS_BUCKET", "showforge-scripts"),
		UsePathStyle:    getEnv("STORAGE_USE_PATH_STYLE", "false") == "true",
		PresignTTL:      getEnvDuration("STORAGE_PRESIGN_TTL", 1*time.Hour),
	}, nil
}

// RetentionConfig controls the cleanup service.
type RetentionConfig struct {
	// EpisodeRetentionDays is how long terminal episodes and their artifacts
	// are kept before soft deletion and purge.
	EpisodeRetentionDays int

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration
}

func loadRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EpisodeRetentionDays: getEnvInt("EPISODE_RETENTION_DAYS", 90),
		CleanupInterval:      getEnvDuration("CLEANUP_INTERVAL", 1*time.Hour),
	}
}
