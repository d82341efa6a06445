package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Pool defaults sized for one pod: MaxOpenConns must cover the worker pool's
// MaxConcurrentJobs plus the API and supervisor, each job holding at most one
// connection at a time outside its commit transaction.
const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
)

// LoadConfigFromEnv assembles a Config from DB_* environment variables,
// falling back to local-development defaults.
func LoadConfigFromEnv() (Config, error) {
	port, err := envInt("DB_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	maxOpen, err := envInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := envInt("DB_MAX_IDLE_CONNS", defaultMaxIdleConns)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Host:            envStr("DB_HOST", "localhost"),
		Port:            port,
		User:            envStr("DB_USER", "showforge"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        envStr("DB_NAME", "showforge"),
		SSLMode:         envStr("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: defaultConnMaxLifetime,
		ConnMaxIdleTime: defaultConnMaxIdleTime,
	}, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
