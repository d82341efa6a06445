package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/showforge/showforge/ent"
	entepisode "github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for cancellation
// registration. Registration is per episode: an API cancel aborts whatever
// job of that episode is in flight on this pod.
type JobRegistry interface {
	RegisterJob(episodeID, jobID string, cancel context.CancelFunc)
	UnregisterJob(episodeID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Capacity check is best-effort; racy with concurrent workers but bounded
	// by WorkerCount and mitigated by poll jitter.
	running, err := w.client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking running jobs: %w", err)
	}
	if running >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "episode_id", claimed.EpisodeID, "stage", claimed.Stage, "worker_id", w.id)
	log.Info("Job claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// Register for API-triggered cancellation.
	w.pool.RegisterJob(claimed.EpisodeID, claimed.ID, cancelJob)
	defer w.pool.UnregisterJob(claimed.EpisodeID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.EpisodeID, claimed.ID, cancelJob)

	result, execErr := w.executor.Execute(jobCtx, claimed)

	cancelHeartbeat()

	// Terminal update uses a background context; jobCtx may be cancelled.
	if err := w.finalizeJob(context.Background(), jobCtx, claimed, result, execErr); err != nil {
		log.Error("Failed to finalize job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete")
	return nil
}

// claimNextJob atomically claims the next queued job using FOR UPDATE SKIP
// LOCKED. Jobs are ordered by episode priority (descending) then FIFO.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	claimed, err := tx.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Order(
			job.ByEpisodeField(entepisode.FieldPriority, sql.OrderDesc()),
			job.ByCreatedAt(),
		).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query queued job: %w", err)
	}

	// Claim: running, claim handle, execution timestamps.
	now := time.Now()
	claimed, err = claimed.Update().
		SetStatus(job.StatusRunning).
		SetExternalTaskID(fmt.Sprintf("%s/%s", w.podID, w.id)).
		SetStartedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// runHeartbeat periodically refreshes heartbeat_at for orphan detection. The
// update covers every running job of the episode: a chain's tracking job plus
// whichever per-stage row the orchestrator has open under it. Each tick also
// re-reads the claimed row; a cancel served by another pod only flips the
// database status, so the heartbeat is where this pod learns about it and
// aborts the local execution.
func (w *Worker) runHeartbeat(ctx context.Context, episodeID, jobID string, cancelJob context.CancelFunc) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.Update().
				Where(job.EpisodeIDEQ(episodeID), job.StatusEQ(job.StatusRunning)).
				SetHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "episode_id", episodeID, "error", err)
				continue
			}

			claimed, err := w.client.Job.Get(ctx, jobID)
			if err != nil {
				slog.Warn("Heartbeat job lookup failed", "job_id", jobID, "error", err)
				continue
			}
			if claimed.Status == job.StatusCancelled {
				slog.Info("Job cancelled externally, aborting local execution",
					"job_id", jobID, "episode_id", episodeID)
				cancelJob()
				return
			}
		}
	}
}

// finalizeJob writes the job's terminal state. A cancelled or expired job
// context maps to cancelled/failed even when the executor returned no result.
// The write is conditional on the row still being running: a cancel served by
// another pod already finalized it, and terminal statuses are never
// overwritten.
func (w *Worker) finalizeJob(ctx, jobCtx context.Context, claimed *ent.Job, result *models.JobResult, execErr error) error {
	update := w.client.Job.Update().
		Where(job.IDEQ(claimed.ID), job.StatusEQ(job.StatusRunning)).
		SetCompletedAt(time.Now())

	switch {
	case execErr == nil:
		if result == nil {
			result = &models.JobResult{}
		}
		update.SetStatus(job.StatusCompleted).
			SetResult(result).
			SetCostUsd(result.CostUSD).
			SetTokensUsed(result.TokensUsed)
	case errors.Is(execErr, context.Canceled):
		update.SetStatus(job.StatusCancelled).
			SetErrorMessage(execErr.Error())
	case errors.Is(execErr, context.DeadlineExceeded) && jobCtx.Err() != nil:
		update.SetStatus(job.StatusFailed).
			SetErrorMessage(fmt.Sprintf("%s: job timed out after %v", services.KindInternal, w.config.JobTimeout))
	default:
		update.SetStatus(job.StatusFailed).
			SetErrorMessage(execErr.Error())
	}

	n, err := update.Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		slog.Info("Job already finalized elsewhere, leaving terminal status untouched",
			"job_id", claimed.ID, "episode_id", claimed.EpisodeID)
	}
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.ClaimInterval
	jitter := w.config.ClaimIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
