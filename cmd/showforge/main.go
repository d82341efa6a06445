// Showforge orchestrator server: HTTP command surface, queue workers, and the
// content pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/showforge/showforge/pkg/api"
	"github.com/showforge/showforge/pkg/cleanup"
	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/database"
	"github.com/showforge/showforge/pkg/pipeline"
	"github.com/showforge/showforge/pkg/providers"
	"github.com/showforge/showforge/pkg/queue"
	"github.com/showforge/showforge/pkg/services"
	"github.com/showforge/showforge/pkg/storage"
	"github.com/showforge/showforge/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to the .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize artifact store", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureBuckets(ctx); err != nil {
		slog.Error("Failed to ensure artifact buckets", "error", err)
		os.Exit(1)
	}
	slog.Info("Artifact store ready",
		"assets_bucket", cfg.Storage.AssetsBucket,
		"scripts_bucket", cfg.Storage.ScriptsBucket)

	// Media providers are optional; their stages reject dispatch when absent.
	text := providers.NewTextClient(cfg.Text)
	var speech *providers.SpeechClient
	var avatar *providers.AvatarClient
	var video *providers.VideoClient
	if cfg.SpeechEnabled() {
		speech = providers.NewSpeechClient(cfg.Speech)
	}
	if cfg.AvatarEnabled() {
		avatar = providers.NewAvatarClient(cfg.Avatar)
	}
	if cfg.VideoEnabled() {
		video = providers.NewVideoClient(cfg.Video)
	}
	slog.Info("Providers initialized",
		"speech", speech != nil, "avatar", avatar != nil, "video", video != nil)

	pipe := pipeline.New(dbClient.Client, store, text, speech, avatar, video)
	executor := queue.NewPipelineExecutor(pipe)

	workerPool := queue.NewWorkerPool(dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	retention := cleanup.NewService(cfg.Retention, services.NewEpisodeService(dbClient.Client), store)
	retention.Start(ctx)
	defer retention.Stop()

	server := api.NewServer(dbClient, workerPool)
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Showforge started",
		"version", version.Full(),
		"pod_id", workerPool.PodID(),
		"workers", cfg.Queue.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	workerPool.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
