package models

// WorkParams are the input_params recorded on a job before dispatch. The job
// row is the durable work item; workers read these back when claiming it.
type WorkParams struct {
	Force bool     `json:"force,omitempty"`
	Start string   `json:"start,omitempty"` // for pipeline_from_<X> tracking jobs
	Skip  []string `json:"skip,omitempty"`  // prerequisite stages to waive
	Model string   `json:"model,omitempty"` // per-job text model override
}

// JobResult is the result column written when a job completes.
type JobResult struct {
	AssetIDs   []string `json:"asset_ids,omitempty"`
	CostUSD    float64  `json:"cost_usd,omitempty"`
	TokensUsed int      `json:"tokens_used,omitempty"`
	DurationS  float64  `json:"duration_s,omitempty"`

	// Cached marks a no-op re-run of an already-completed stage: the result
	// references the prior outcome and no new artifact was produced.
	Cached bool `json:"cached,omitempty"`

	// StagesCompleted is set on orchestrator tracking jobs.
	StagesCompleted []string `json:"stages_completed,omitempty"`
}

// AssetMetadata is the free-form metadata column on an asset row.
type AssetMetadata struct {
	Checksum string  `json:"checksum,omitempty"`
	ClipIdx  int     `json:"clip_idx,omitempty"` // 1-based, b-roll only
	Cue      string  `json:"cue,omitempty"`      // b-roll prompt this clip renders
	Voice    string  `json:"voice,omitempty"`
	Seconds  float64 `json:"seconds,omitempty"`
}
