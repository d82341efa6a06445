package models

import "time"

// StageStatus is the per-stage progress status recorded in an episode's
// pipeline state. Distinct from the job status: a stage may be retried by a
// new job while its last recorded state is still "failed".
type StageStatus string

// Stage status values.
const (
	StageStatusRunning   StageStatus = "running"
	StageStatusCompleted StageStatus = "completed"
	StageStatusFailed    StageStatus = "failed"
	StageStatusCancelled StageStatus = "cancelled"
)

// StageState is one entry of the episode's pipeline_state column. A stage that
// reached "completed" never re-enters "running" unless a caller forces
// re-execution, which bumps Attempts.
type StageState struct {
	Status      StageStatus `json:"status"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Error       string      `json:"error,omitempty"`
	Attempts    int         `json:"attempts"`
	CostUSD     float64     `json:"cost_usd,omitempty"`
	TokensUsed  int         `json:"tokens_used,omitempty"`
	AssetIDs    []string    `json:"asset_ids,omitempty"`

	// Stage-specific extras.
	DurationS float64 `json:"duration_s,omitempty"` // audio/avatar/broll media length
	ClipCount int     `json:"clip_count,omitempty"` // broll
}

// PipelineState maps stage name to its progress record. This is the
// authoritative per-stage history on the episode row.
type PipelineState map[string]StageState

// Completed reports whether the given stage has completed.
func (p PipelineState) Completed(stage string) bool {
	s, ok := p[stage]
	return ok && s.Status == StageStatusCompleted
}

// CompletedCount returns how many of the given stages are completed.
func (p PipelineState) CompletedCount(stages []string) int {
	n := 0
	for _, s := range stages {
		if p.Completed(s) {
			n++
		}
	}
	return n
}
