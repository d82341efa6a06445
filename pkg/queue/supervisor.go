package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/config"
)

// Supervisor is the periodic reaper that keeps job rows coherent with actual
// worker activity. A job row claims in-flight status; the supervisor verifies
// the claim and cancels rows whose worker is gone.
//
// Liveness signals, by status:
//   - queued: the row was never claimed; stale once created_at passes the
//     orphan threshold with no worker picking it up.
//   - running: heartbeat_at is the worker's liveness proof; stale once it
//     passes the threshold. Jobs registered on this pod are always live.
type Supervisor struct {
	client *ent.Client
	config *config.QueueConfig
	pool   *WorkerPool
	stopCh chan struct{}
	wg     sync.WaitGroup

	mu       sync.RWMutex
	lastScan time.Time
	reaped   int
}

// NewSupervisor creates the supervisor for a pool.
func NewSupervisor(client *ent.Client, cfg *config.QueueConfig, pool *WorkerPool) *Supervisor {
	return &Supervisor{
		client: client,
		config: cfg,
		pool:   pool,
		stopCh: make(chan struct{}),
	}
}

// Start launches the periodic scan loop.
func (s *Supervisor) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.config.OrphanScanInterval)
		defer ticker.Stop()

		slog.Info("Supervisor started", "scan_interval", s.config.OrphanScanInterval, "orphan_threshold", s.config.OrphanThreshold)

		for {
			select {
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := s.ReapOrphans(ctx)
				s.mu.Lock()
				s.lastScan = time.Now()
				s.reaped += n
				s.mu.Unlock()
				if err != nil {
					slog.Error("Orphan scan failed", "error", err)
				}
			}
		}
	}()
}

// Stop halts the scan loop.
func (s *Supervisor) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// LastScan reports the time of the most recent scan and the total orphans
// reaped since start.
func (s *Supervisor) LastScan() (time.Time, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastScan, s.reaped
}

// ReapOrphans runs one scan pass and returns how many jobs it cancelled.
func (s *Supervisor) ReapOrphans(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.config.OrphanThreshold)

	candidates, err := s.client.Job.Query().
		Where(
			job.Or(
				job.And(job.StatusEQ(job.StatusQueued), job.CreatedAtLT(cutoff)),
				job.And(
					job.StatusEQ(job.StatusRunning),
					job.Or(job.HeartbeatAtIsNil(), job.HeartbeatAtLT(cutoff)),
				),
			),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query orphan candidates: %w", err)
	}

	// An aged queued row only means no worker picked it up. With the pool
	// saturated that is ordinary backlog, not an orphan, so queued rows are
	// spared while live running jobs fill every slot.
	liveRunning, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.HeartbeatAtGTE(cutoff),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count live running jobs: %w", err)
	}
	saturated := liveRunning >= s.config.MaxConcurrentJobs

	reaped := 0
	for _, j := range candidates {
		if j.Status == job.StatusQueued && saturated {
			continue
		}

		// Any job of an episode active on this pod is live regardless of
		// heartbeat lag; that covers a chain's per-stage rows too.
		if s.pool != nil && s.pool.holdsEpisode(j.EpisodeID) {
			continue
		}

		slog.Warn("Reaping orphaned job",
			"job_id", j.ID,
			"episode_id", j.EpisodeID,
			"stage", j.Stage,
			"status", j.Status,
			"age", time.Since(j.CreatedAt).Round(time.Second))

		wasRunning := j.Status == job.StatusRunning
		if err := s.client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusCancelled).
			SetErrorMessage("orphaned").
			SetCompletedAt(time.Now()).
			Exec(ctx); err != nil {
			slog.Error("Failed to cancel orphaned job", "job_id", j.ID, "error", err)
			continue
		}
		reaped++

		// A running orphan died mid-stage; reflect that on the episode so its
		// state machine does not sit in a processing status forever.
		if wasRunning {
			if err := s.failOrphanedEpisode(ctx, j); err != nil {
				slog.Error("Failed to update episode for orphaned job", "episode_id", j.EpisodeID, "error", err)
			}
		}
	}

	if reaped > 0 {
		slog.Info("Orphan scan complete", "reaped", reaped)
	}
	return reaped, nil
}

// failOrphanedEpisode marks the orphaned job's episode failed, but only when
// the episode is still sitting in the job's stage status.
func (s *Supervisor) failOrphanedEpisode(ctx context.Context, j *ent.Job) error {
	ep, err := s.client.Episode.Get(ctx, j.EpisodeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return err
	}
	// The stage committed but its job row never reached a terminal status;
	// the worker died between the commit and the finalize write.
	if ep.PipelineState.Completed(j.Stage) {
		slog.Warn("Stage committed but job row was left running; finalize write was lost",
			"job_id", j.ID,
			"episode_id", j.EpisodeID,
			"stage", j.Stage)
	}
	if string(ep.Status) != j.Stage {
		return nil
	}
	return s.client.Episode.UpdateOneID(ep.ID).
		SetStatus(episode.StatusFailed).
		SetLastError(fmt.Sprintf("%s stage orphaned", j.Stage)).
		SetRetryCount(ep.RetryCount + 1).
		Exec(ctx)
}

// holdsEpisode reports whether this pod is currently executing a job for the
// episode.
func (p *WorkerPool) holdsEpisode(episodeID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.active[episodeID]
	return ok
}

// CleanupStartupJobs cancels running jobs claimed by an earlier run on this
// host. Workers embed "hostname-<run>/<worker>" in external_task_id; any
// running row matching this hostname predates the current process and its
// worker is gone.
func CleanupStartupJobs(ctx context.Context, client *ent.Client) error {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "showforge"
	}

	stale, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.ExternalTaskIDHasPrefix(hostname+"-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stale running jobs: %w", err)
	}

	for _, j := range stale {
		slog.Warn("Cancelling job from previous run", "job_id", j.ID, "episode_id", j.EpisodeID, "stage", j.Stage)
		if err := client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusCancelled).
			SetErrorMessage("orphaned").
			SetCompletedAt(time.Now()).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to cancel stale job %s: %w", j.ID, err)
		}
	}

	if len(stale) > 0 {
		slog.Info("Startup cleanup complete", "cancelled", len(stale))
	}
	return nil
}
