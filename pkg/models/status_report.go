package models

import "time"

// StageReport is the per-stage block of a pipeline status report.
type StageReport struct {
	Status      StageStatus `json:"status"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	DurationS   float64     `json:"duration_s,omitempty"`
	Error       string      `json:"error,omitempty"`
	Attempts    int         `json:"attempts"`
}

// PipelineProgress summarises chain completion.
type PipelineProgress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// ActiveJobReport describes one queued or running job.
type ActiveJobReport struct {
	JobID     string     `json:"job_id"`
	Stage     string     `json:"stage"`
	Status    string     `json:"status"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// PipelineStatusReport is the episode.pipeline_status response.
type PipelineStatusReport struct {
	EpisodeID  string                 `json:"episode_id"`
	Status     string                 `json:"status"`
	Progress   PipelineProgress       `json:"progress"`
	Stages     map[string]StageReport `json:"stages"`
	ActiveJobs []ActiveJobReport      `json:"active_jobs"`
	LastError  string                 `json:"last_error,omitempty"`
}
