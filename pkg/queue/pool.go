package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/config"
)

// WorkerPool manages a set of queue workers plus the supervisor, and holds the
// pod-local cancel registry that lets API cancellation reach in-flight jobs.
type WorkerPool struct {
	podID      string
	client     *ent.Client
	config     *config.QueueConfig
	executor   JobExecutor
	workers    []*Worker
	supervisor *Supervisor

	mu      sync.RWMutex
	active  map[string]activeJob // episode ID -> in-flight job on this pod
	started bool
}

type activeJob struct {
	jobID  string
	cancel context.CancelFunc
}

// NewWorkerPool creates a worker pool. The pod ID identifies this process in
// job claim handles; each pod gets a fresh one per start.
func NewWorkerPool(client *ent.Client, cfg *config.QueueConfig, executor JobExecutor) *WorkerPool {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "showforge"
	}
	podID := fmt.Sprintf("%s-%s", hostname, uuid.New().String()[:8])

	p := &WorkerPool{
		podID:    podID,
		client:   client,
		config:   cfg,
		executor: executor,
		active:   make(map[string]activeJob),
	}
	p.supervisor = NewSupervisor(client, cfg, p)
	return p
}

// PodID returns this pool's claim-handle prefix.
func (p *WorkerPool) PodID() string {
	return p.podID
}

// Start recovers jobs left behind by a previous run of this pod's image, then
// launches the workers and the supervisor.
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return fmt.Errorf("worker pool already started")
	}
	p.started = true
	p.mu.Unlock()

	slog.Info("Starting worker pool", "pod_id", p.podID, "workers", p.config.WorkerCount)

	if err := CleanupStartupJobs(ctx, p.client); err != nil {
		slog.Warn("Startup job cleanup failed", "error", err)
	}

	for i := 0; i < p.config.WorkerCount; i++ {
		w := NewWorker(fmt.Sprintf("worker-%d", i), p.podID, p.client, p.config, p.executor, p)
		p.workers = append(p.workers, w)
		w.Start(ctx)
	}

	p.supervisor.Start(ctx)
	return nil
}

// Stop performs graceful shutdown: cancel in-flight jobs, then wait for the
// workers to finalize within the grace period.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool", "pod_id", p.podID)

	p.mu.Lock()
	for episodeID, a := range p.active {
		slog.Info("Cancelling in-flight job for shutdown", "episode_id", episodeID, "job_id", a.jobID)
		a.cancel()
	}
	p.mu.Unlock()

	p.supervisor.Stop()

	done := make(chan struct{})
	go func() {
		for _, w := range p.workers {
			w.Stop()
		}
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped")
	case <-time.After(p.config.ShutdownGracePeriod):
		slog.Warn("Worker pool shutdown grace period expired")
	}
}

// RegisterJob records an in-flight job so CancelEpisode can reach it.
func (p *WorkerPool) RegisterJob(episodeID, jobID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[episodeID] = activeJob{jobID: jobID, cancel: cancel}
}

// UnregisterJob removes an episode's in-flight registration.
func (p *WorkerPool) UnregisterJob(episodeID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, episodeID)
}

// CancelEpisode cancels the in-flight job for the episode on this pod, if any.
// Returns true when a running job was signalled.
func (p *WorkerPool) CancelEpisode(episodeID string) bool {
	p.mu.RLock()
	a, ok := p.active[episodeID]
	p.mu.RUnlock()
	if !ok {
		return false
	}
	slog.Info("Cancelling in-flight job", "episode_id", episodeID, "job_id", a.jobID)
	a.cancel()
	return true
}

// Health reports the pool's aggregate health, including database reachability
// and queue depth.
func (p *WorkerPool) Health(ctx context.Context) PoolHealth {
	h := PoolHealth{
		PodID:         p.podID,
		TotalWorkers:  len(p.workers),
		MaxConcurrent: p.config.MaxConcurrentJobs,
	}

	for _, w := range p.workers {
		wh := w.Health()
		h.WorkerStats = append(h.WorkerStats, wh)
		h.ActiveWorkers++
		if wh.Status == string(WorkerStatusWorking) {
			h.RunningJobs++
		}
	}

	if depth, err := p.client.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Count(ctx); err != nil {
		h.DBReachable = false
		h.DBError = err.Error()
	} else {
		h.DBReachable = true
		h.QueueDepth = depth
	}

	scan, reaped := p.supervisor.LastScan()
	h.LastOrphanScan = scan
	h.OrphansReaped = reaped

	h.IsHealthy = h.DBReachable && h.ActiveWorkers > 0
	return h
}
