// Package cleanup provides data retention enforcement.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/services"
	"github.com/showforge/showforge/pkg/storage"
)

// Service periodically enforces retention: episodes untouched past the
// retention window are soft-deleted and their stored artifacts removed.
// Runs are idempotent and safe to run from multiple pods.
type Service struct {
	config         *config.RetentionConfig
	episodeService *services.EpisodeService
	store          *storage.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, episodeService *services.EpisodeService, store *storage.Store) *Service {
	return &Service{
		config:         cfg,
		episodeService: episodeService,
		store:          store,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"episode_retention_days", s.config.EpisodeRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.retireOldEpisodes(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.retireOldEpisodes(ctx)
		}
	}
}

// retireOldEpisodes soft-deletes episodes past retention, then clears their
// object-store artifacts.
func (s *Service) retireOldEpisodes(ctx context.Context) {
	ids, err := s.episodeService.SoftDeleteOldEpisodes(ctx, s.config.EpisodeRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete episodes failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	slog.Info("Retention: soft-deleted old episodes", "count", len(ids))

	if s.store == nil {
		return
	}
	for _, id := range ids {
		if _, err := s.store.DeleteEpisodeObjects(ctx, id); err != nil {
			slog.Error("Retention: artifact cleanup failed", "episode_id", id, "error", err)
		}
	}
}
