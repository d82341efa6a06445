package config

import "time"

// QueueConfig controls the worker pool and the job supervisor.
type QueueConfig struct {
	// WorkerCount is the number of concurrent claim loops.
	WorkerCount int

	// MaxConcurrentJobs caps running jobs across all workers of a pod.
	MaxConcurrentJobs int

	// ClaimInterval is how often an idle worker polls for queued jobs.
	// ClaimIntervalJitter desynchronises workers: each poll waits in
	// [interval-jitter, interval+jitter].
	ClaimInterval       time.Duration
	ClaimIntervalJitter time.Duration

	// HeartbeatInterval is how often a running worker refreshes its job's
	// heartbeat_at.
	HeartbeatInterval time.Duration

	// OrphanThreshold marks a running job orphaned once its heartbeat is
	// older than this.
	OrphanThreshold time.Duration

	// OrphanScanInterval is how often the supervisor sweeps for orphans and
	// state drift.
	OrphanScanInterval time.Duration

	// JobTimeout bounds a single stage or chain execution.
	JobTimeout time.Duration

	// ShutdownGracePeriod is how long Stop waits for in-flight jobs.
	ShutdownGracePeriod time.Duration
}

// DefaultQueueConfig returns the queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:         4,
		MaxConcurrentJobs:   8,
		ClaimInterval:       2 * time.Second,
		ClaimIntervalJitter: 500 * time.Millisecond,
		HeartbeatInterval:   30 * time.Second,
		OrphanThreshold:     15 * time.Minute,
		OrphanScanInterval:  1 * time.Minute,
		JobTimeout:          30 * time.Minute,
		ShutdownGracePeriod: 30 * time.Second,
	}
}

func loadQueueConfig() *QueueConfig {
	d := DefaultQueueConfig()
	return &QueueConfig{
		WorkerCount:         getEnvInt("QUEUE_WORKER_COUNT", d.WorkerCount),
		MaxConcurrentJobs:   getEnvInt("QUEUE_MAX_CONCURRENT_JOBS", d.MaxConcurrentJobs),
		ClaimInterval:       getEnvDuration("QUEUE_CLAIM_INTERVAL", d.ClaimInterval),
		ClaimIntervalJitter: getEnvDuration("QUEUE_CLAIM_INTERVAL_JITTER", d.ClaimIntervalJitter),
		HeartbeatInterval:   getEnvDuration("QUEUE_HEARTBEAT_INTERVAL", d.HeartbeatInterval),
		OrphanThreshold:     getEnvDuration("QUEUE_ORPHAN_THRESHOLD", d.OrphanThreshold),
		OrphanScanInterval:  getEnvDuration("QUEUE_ORPHAN_SCAN_INTERVAL", d.OrphanScanInterval),
		JobTimeout:          getEnvDuration("QUEUE_JOB_TIMEOUT", d.JobTimeout),
		ShutdownGracePeriod: getEnvDuration("QUEUE_SHUTDOWN_GRACE_PERIOD", d.ShutdownGracePeriod),
	}
}
