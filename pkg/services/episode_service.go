package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/models"
)

// EpisodeService manages episode lifecycle and pipeline-state reads.
type EpisodeService struct {
	client *ent.Client
}

// NewEpisodeService creates a new EpisodeService.
func NewEpisodeService(client *ent.Client) *EpisodeService {
	return &EpisodeService{client: client}
}

// CreateEpisode creates an episode in the idea state. auto_advance defaults to
// the owning channel's setting unless the request overrides it.
func (s *EpisodeService) CreateEpisode(ctx context.Context, req models.CreateEpisodeRequest) (*ent.Episode, error) {
	if req.ChannelID == "" {
		return nil, E(KindValidation, "channel_id is required")
	}
	if req.Idea.Brief == "" {
		return nil, E(KindValidation, "idea.brief is required")
	}
	if req.Priority < -1 || req.Priority > 2 {
		return nil, E(KindValidation, "priority must be in [-1, 2], got %d", req.Priority)
	}
	ideaSource := req.IdeaSource
	if ideaSource == "" {
		ideaSource = string(episode.IdeaSourceManual)
	}

	ch, err := NewChannelService(s.client).GetChannel(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}

	autoAdvance := ch.AutoAdvance
	if req.AutoAdvance != nil {
		autoAdvance = *req.AutoAdvance
	}

	idea := req.Idea
	ep, err := s.client.Episode.Create().
		SetID(uuid.New().String()).
		SetChannelID(ch.ID).
		SetTitle(req.Title).
		SetIdea(&idea).
		SetIdeaSource(episode.IdeaSource(ideaSource)).
		SetPriority(req.Priority).
		SetStatus(episode.StatusIdea).
		SetAutoAdvance(autoAdvance).
		SetPipelineState(models.PipelineState{}).
		Save(ctx)
	if err != nil {
		if ent.IsValidationError(err) {
			return nil, E(KindValidation, "invalid episode: %v", err)
		}
		return nil, fmt.Errorf("failed to create episode: %w", err)
	}
	return ep, nil
}

// GetEpisode returns a live episode by id.
func (s *EpisodeService) GetEpisode(ctx context.Context, id string) (*ent.Episode, error) {
	ep, err := s.client.Episode.Query().
		Where(episode.IDEQ(id), episode.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, E(KindNotFound, "episode %s not found", id)
		}
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}
	return ep, nil
}

// ListEpisodes returns live episodes for a channel, newest first.
func (s *EpisodeService) ListEpisodes(ctx context.Context, channelID string, limit int) ([]*ent.Episode, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	eps, err := s.client.Episode.Query().
		Where(episode.ChannelIDEQ(channelID), episode.DeletedAtIsNil()).
		Order(ent.Desc(episode.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	return eps, nil
}

// ApproveScript completes the script_review human gate: script_review → audio
// is dispatched by the orchestrator afterwards; approval itself only verifies
// the gate is open. It is a no-op when auto_advance already bypassed the gate.
func (s *EpisodeService) ApproveScript(ctx context.Context, id string) (*ent.Episode, error) {
	ep, err := s.GetEpisode(ctx, id)
	if err != nil {
		return nil, err
	}
	if ep.Status != episode.StatusScriptReview {
		return nil, E(KindValidation, "episode %s is %s, not script_review", id, ep.Status)
	}
	return ep, nil
}

// CancelEpisode transitions the episode to cancelled and marks every queued or
// running job cancelled. Idempotent: cancelling an already-cancelled episode
// reports zero additional job cancellations.
func (s *EpisodeService) CancelEpisode(ctx context.Context, id string) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ep, err := tx.Episode.Query().
		Where(episode.IDEQ(id), episode.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, E(KindNotFound, "episode %s not found", id)
		}
		return 0, fmt.Errorf("failed to get episode: %w", err)
	}

	now := time.Now()
	cancelled, err := tx.Job.Update().
		Where(
			job.EpisodeIDEQ(id),
			job.StatusIn(job.StatusQueued, job.StatusRunning),
		).
		SetStatus(job.StatusCancelled).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel jobs: %w", err)
	}

	if ep.Status != episode.StatusCancelled {
		if err := tx.Episode.UpdateOneID(id).
			SetStatus(episode.StatusCancelled).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to cancel episode: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit cancellation: %w", err)
	}
	return cancelled, nil
}

// PipelineStatus aggregates the episode's pipeline_state and active jobs into
// a progress report over the canonical stage order.
func (s *EpisodeService) PipelineStatus(ctx context.Context, id string) (*models.PipelineStatusReport, error) {
	ep, err := s.GetEpisode(ctx, id)
	if err != nil {
		return nil, err
	}

	active, err := s.client.Job.Query().
		Where(
			job.EpisodeIDEQ(id),
			job.StatusIn(job.StatusQueued, job.StatusRunning),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active jobs: %w", err)
	}

	stages := make(map[string]models.StageReport, len(models.StageOrder))
	completed := 0
	for _, name := range models.StageOrder {
		st, ok := ep.PipelineState[name]
		if !ok {
			continue
		}
		report := models.StageReport{
			Status:      st.Status,
			StartedAt:   st.StartedAt,
			CompletedAt: st.CompletedAt,
			Error:       st.Error,
			Attempts:    st.Attempts,
		}
		if st.StartedAt != nil && st.CompletedAt != nil {
			report.DurationS = st.CompletedAt.Sub(*st.StartedAt).Seconds()
		}
		stages[name] = report
		if st.Status == models.StageStatusCompleted {
			completed++
		}
	}

	total := len(models.StageOrder)
	activeReports := make([]models.ActiveJobReport, len(active))
	for i, j := range active {
		activeReports[i] = models.ActiveJobReport{
			JobID:     j.ID,
			Stage:     j.Stage,
			Status:    string(j.Status),
			StartedAt: j.StartedAt,
		}
	}

	lastError := ""
	if ep.LastError != nil {
		lastError = *ep.LastError
	}

	return &models.PipelineStatusReport{
		EpisodeID: ep.ID,
		Status:    string(ep.Status),
		Progress: models.PipelineProgress{
			Completed: completed,
			Total:     total,
			Percent:   100 * float64(completed) / float64(total),
		},
		Stages:     stages,
		ActiveJobs: activeReports,
		LastError:  lastError,
	}, nil
}

// SoftDeleteOldEpisodes soft-deletes terminal episodes older than the given
// retention window. Returns the ids so the caller can purge stored artifacts.
func (s *EpisodeService) SoftDeleteOldEpisodes(ctx context.Context, retentionDays int) ([]string, error) {
	if retentionDays <= 0 {
		return nil, E(KindValidation, "retentionDays must be positive")
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	old, err := s.client.Episode.Query().
		Where(
			episode.StatusIn(episode.StatusPublished, episode.StatusFailed, episode.StatusCancelled),
			episode.CreatedAtLT(cutoff),
			episode.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query old episodes: %w", err)
	}
	if len(old) == 0 {
		return nil, nil
	}

	ids := make([]string, len(old))
	for i, ep := range old {
		ids[i] = ep.ID
	}
	if _, err := s.client.Episode.Update().
		Where(episode.IDIn(ids...)).
		SetDeletedAt(time.Now()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to soft-delete episodes: %w", err)
	}
	return ids, nil
}
