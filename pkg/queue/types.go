// Package queue provides the durable job queue: worker pool, claim loop, and
// the supervisor that keeps job rows coherent with actual worker activity.
// The jobs table itself is the queue; workers claim queued rows with
// FOR UPDATE SKIP LOCKED.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no queued jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor processes one claimed job. The executor owns all episode-level
// persistence (content slots, pipeline state, assets) and writes it
// progressively; the worker only handles claiming, heartbeat, and the job
// row's terminal status.
type JobExecutor interface {
	Execute(ctx context.Context, j *ent.Job) (*models.JobResult, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	RunningJobs   int            `json:"running_jobs"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastOrphanScan time.Time     `json:"last_orphan_scan"`
	OrphansReaped  int           `json:"orphans_reaped"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
