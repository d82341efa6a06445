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

// JobService manages durable job rows. Jobs are the work queue: dispatch
// creates a queued row, workers claim it, and the supervisor keeps rows
// coherent with actual worker activity.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CheckStagePrecondition validates that an episode is in the state a stage
// requires. Two relaxations beyond the exact required status: a status past
// the required one is accepted when every gating prior stage has completed
// (broll dispatched after avatar, forced re-runs), and failed/cancelled
// episodes may be recovered the same way. metadata never gates.
func CheckStagePrecondition(ep *ent.Episode, stage string) error {
	required, ok := StagePrecondition(stage)
	if !ok {
		return E(KindValidation, "unknown stage %q", stage)
	}
	if ep.Status == required {
		return nil
	}
	if IsTerminalStatus(ep.Status) || statusRank(ep.Status) > statusRank(required) {
		for _, prior := range GatingStages(stage) {
			if !ep.PipelineState.Completed(prior) {
				return E(KindValidation,
					"episode %s is %s and stage %s is not completed; cannot run %s",
					ep.ID, ep.Status, prior, stage)
			}
		}
		return nil
	}
	return E(KindValidation, "episode %s is %s, stage %s requires %s", ep.ID, ep.Status, stage, required)
}

// DispatchStage creates one queued job for a content stage after the guards
// pass. The episode row is locked for the check-then-enqueue sequence, so a
// concurrent dispatch surfaces as a conflict error rather than a silent race.
// force bypasses the completed-stage idempotence guard only, never the
// active-job guard.
func (s *JobService) DispatchStage(ctx context.Context, episodeID, stage string, params models.WorkParams, force bool) (*ent.Job, error) {
	if !models.IsStage(stage) {
		return nil, E(KindValidation, "unknown stage %q", stage)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ep, err := lockEpisode(ctx, tx, episodeID)
	if err != nil {
		return nil, err
	}

	if !force && ep.PipelineState.Completed(stage) {
		return nil, E(KindValidation, "stage %s already completed for episode %s; pass force to re-run", stage, episodeID)
	}

	// A standalone scripting job leaves the episode at scripting; the
	// review gate is only entered when a downstream stage is requested.
	// Flip it here, under the row lock, so metadata/audio dispatched after
	// such a job do not bounce off their script_review precondition.
	if required, ok := StagePrecondition(stage); ok &&
		required == episode.StatusScriptReview &&
		ep.Status == episode.StatusScripting &&
		ep.PipelineState.Completed(models.StageScripting) {
		ep, err = tx.Episode.UpdateOneID(episodeID).
			SetStatus(episode.StatusScriptReview).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to enter script_review: %w", err)
		}
	}

	if err := CheckStagePrecondition(ep, stage); err != nil {
		return nil, err
	}
	if err := guardNoActiveJobs(ctx, tx, episodeID); err != nil {
		return nil, err
	}

	params.Force = force
	j, err := createJob(ctx, tx, episodeID, stage, params, 0)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit dispatch: %w", err)
	}
	return j, nil
}

// DispatchChain creates a queued orchestrator tracking job. Entry-point
// guards: episode status in {idea, failed, cancelled} and no active jobs;
// pipeline_from_<X> additionally requires every stage before X completed
// unless named in params.Skip.
func (s *JobService) DispatchChain(ctx context.Context, episodeID, chainStage string, params models.WorkParams) (*ent.Job, error) {
	stages, err := models.ChainStages(chainStage)
	if err != nil {
		return nil, E(KindValidation, "%v", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ep, err := lockEpisode(ctx, tx, episodeID)
	if err != nil {
		return nil, err
	}

	if ep.Status != episode.StatusIdea && !IsTerminalStatus(ep.Status) {
		return nil, E(KindValidation,
			"episode %s is %s; pipelines start from idea, failed, or cancelled", episodeID, ep.Status)
	}
	if err := guardNoActiveJobs(ctx, tx, episodeID); err != nil {
		return nil, err
	}

	// Resumed pipelines require a completed prefix.
	if first := stages[0]; first != models.StagePlanning {
		skip := make(map[string]bool, len(params.Skip))
		for _, sk := range params.Skip {
			skip[sk] = true
		}
		for _, prior := range models.StageOrder[:models.StageIndex(first)] {
			if skip[prior] || prior == models.StageMetadata {
				continue
			}
			if !ep.PipelineState.Completed(prior) {
				return nil, E(KindValidation,
					"cannot start from %s: stage %s is not completed and not skipped", first, prior)
			}
		}
	}

	j, err := createJob(ctx, tx, episodeID, chainStage, params, 0)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit dispatch: %w", err)
	}
	return j, nil
}

// GetJob returns a job by id.
func (s *JobService) GetJob(ctx context.Context, id string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, E(KindNotFound, "job %s not found", id)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ActiveJobs returns queued or running jobs for an episode.
func (s *JobService) ActiveJobs(ctx context.Context, episodeID string) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(
			job.EpisodeIDEQ(episodeID),
			job.StatusIn(job.StatusQueued, job.StatusRunning),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active jobs: %w", err)
	}
	return jobs, nil
}

// RetryJob transforms a failed job back to queued. Bounded by max_retries;
// clears execution timestamps and the error message. The row becoming queued
// is the re-dispatch: a worker will claim it again.
func (s *JobService) RetryJob(ctx context.Context, id string) (*ent.Job, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	j, err := tx.Job.Query().
		Where(job.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, E(KindNotFound, "job %s not found", id)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if j.Status != job.StatusFailed {
		return nil, E(KindValidation, "job %s is %s; only failed jobs can be retried", id, j.Status)
	}
	if j.RetryCount >= j.MaxRetries {
		return nil, E(KindValidation, "job %s exhausted its %d retries", id, j.MaxRetries)
	}

	j, err = tx.Job.UpdateOneID(id).
		SetStatus(job.StatusQueued).
		SetRetryCount(j.RetryCount + 1).
		ClearStartedAt().
		ClearCompletedAt().
		ClearErrorMessage().
		ClearExternalTaskID().
		ClearHeartbeatAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset job: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit retry: %w", err)
	}
	return j, nil
}

// CancelJob cancels a queued or running job. Cancelling an already-cancelled
// job is a no-op.
func (s *JobService) CancelJob(ctx context.Context, id string) (*ent.Job, error) {
	j, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	switch j.Status {
	case job.StatusCancelled:
		return j, nil
	case job.StatusCompleted, job.StatusFailed:
		return nil, E(KindValidation, "job %s is %s and cannot be cancelled", id, j.Status)
	}

	j, err = s.client.Job.UpdateOneID(id).
		SetStatus(job.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel job: %w", err)
	}
	return j, nil
}

// lockEpisode fetches the episode row FOR UPDATE so that check-then-enqueue
// sequences serialise per episode.
func lockEpisode(ctx context.Context, tx *ent.Tx, episodeID string) (*ent.Episode, error) {
	ep, err := tx.Episode.Query().
		Where(episode.IDEQ(episodeID), episode.DeletedAtIsNil()).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, E(KindNotFound, "episode %s not found", episodeID)
		}
		return nil, fmt.Errorf("failed to lock episode: %w", err)
	}
	return ep, nil
}

func guardNoActiveJobs(ctx context.Context, tx *ent.Tx, episodeID string) error {
	active, err := tx.Job.Query().
		Where(
			job.EpisodeIDEQ(episodeID),
			job.StatusIn(job.StatusQueued, job.StatusRunning),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active jobs: %w", err)
	}
	if active > 0 {
		return E(KindConflict, "active job in progress for episode %s", episodeID)
	}
	return nil
}

func createJob(ctx context.Context, tx *ent.Tx, episodeID, stage string, params models.WorkParams, maxRetries int) (*ent.Job, error) {
	builder := tx.Job.Create().
		SetID(uuid.New().String()).
		SetEpisodeID(episodeID).
		SetStage(stage).
		SetStatus(job.StatusQueued).
		SetInputParams(&params)
	if maxRetries > 0 {
		builder.SetMaxRetries(maxRetries)
	}
	j, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}
