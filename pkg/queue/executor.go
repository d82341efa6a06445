package queue

import (
	"context"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/pipeline"
)

// PipelineExecutor runs claimed jobs through the pipeline: tracking jobs go to
// the chain orchestrator, single-stage jobs straight to the stage executor.
type PipelineExecutor struct {
	pipeline *pipeline.Pipeline
}

// NewPipelineExecutor creates the executor adapter.
func NewPipelineExecutor(p *pipeline.Pipeline) *PipelineExecutor {
	return &PipelineExecutor{pipeline: p}
}

// Execute implements JobExecutor.
func (e *PipelineExecutor) Execute(ctx context.Context, j *ent.Job) (*models.JobResult, error) {
	if models.IsChainStage(j.Stage) {
		return e.pipeline.RunChain(ctx, j)
	}

	params := models.WorkParams{}
	if j.InputParams != nil {
		params = *j.InputParams
	}
	outcome, err := e.pipeline.RunStage(ctx, j.EpisodeID, j.Stage, params)
	if err != nil {
		return nil, err
	}
	return &models.JobResult{
		AssetIDs:   outcome.AssetIDs,
		CostUSD:    outcome.Usage.CostUSD,
		TokensUsed: outcome.Usage.Tokens(),
		DurationS:  outcome.DurationS,
		Cached:     outcome.Cached,
	}, nil
}
