package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
)

// RunChain executes an orchestrator tracking job: the chain's stages run
// sequentially, each under its own job row, fail-fast. The caller (worker)
// owns the tracking job's terminal status; RunChain returns its result.
//
// The script_review gate: after scripting (and metadata, when the chain
// includes it) the episode pauses at script_review unless auto_advance is set.
// A paused chain is a successful tracking job; audio and later stages wait for
// a resumed pipeline after approval.
func (p *Pipeline) RunChain(ctx context.Context, tracking *ent.Job) (*models.JobResult, error) {
	stages, err := models.ChainStages(tracking.Stage)
	if err != nil {
		return nil, services.E(services.KindValidation, "%v", err)
	}
	params := models.WorkParams{}
	if tracking.InputParams != nil {
		params = *tracking.InputParams
	}
	skip := make(map[string]bool, len(params.Skip))
	for _, s := range params.Skip {
		skip[s] = true
	}

	logger := slog.With("episode_id", tracking.EpisodeID, "chain", tracking.Stage)
	logger.Info("Pipeline chain starting", "stages", stages)

	result := &models.JobResult{}
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ep, err := p.client.Episode.Query().
			Where(episode.IDEQ(tracking.EpisodeID), episode.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, services.E(services.KindNotFound, "episode %s not found", tracking.EpisodeID)
			}
			return nil, fmt.Errorf("failed to load episode: %w", err)
		}
		if ep.Status == episode.StatusCancelled {
			logger.Info("Episode cancelled, abandoning chain", "stage", stage)
			return nil, context.Canceled
		}

		if skip[stage] {
			logger.Info("Stage skipped by request", "stage", stage)
			continue
		}
		if ep.PipelineState.Completed(stage) && !params.Force {
			logger.Info("Stage already completed, skipping", "stage", stage)
			continue
		}

		// Recovered entry: a failed/cancelled episode restarting its chain is
		// reset to the stage's required status so the executor's precondition
		// and resulting-status bookkeeping line up.
		if services.IsTerminalStatus(ep.Status) {
			required, _ := services.StagePrecondition(stage)
			if err := p.client.Episode.UpdateOneID(ep.ID).
				SetStatus(required).
				Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to reset recovered episode: %w", err)
			}
		}

		outcome, err := p.runStageJob(ctx, tracking.EpisodeID, stage, params)
		if err != nil {
			logger.Warn("Stage failed, abandoning chain", "stage", stage, "error", err)
			p.abandonChain(tracking.EpisodeID, err)
			return nil, err
		}
		result.StagesCompleted = append(result.StagesCompleted, stage)
		result.CostUSD += outcome.Usage.CostUSD
		result.TokensUsed += outcome.Usage.Tokens()
		result.DurationS += outcome.DurationS

		// The scripting executor's final act: enter the script_review pause.
		if stage == models.StageScripting {
			if err := p.enterScriptReview(ctx, tracking.EpisodeID); err != nil {
				return nil, err
			}
		}

		// After the text stages, a gated episode stops here.
		if stage == models.StageMetadata || (stage == models.StageScripting && !chainIncludes(stages, models.StageMetadata)) {
			ep, err := p.client.Episode.Get(ctx, tracking.EpisodeID)
			if err != nil {
				return nil, fmt.Errorf("failed to reload episode: %w", err)
			}
			if !ep.AutoAdvance && chainIncludes(stages, models.StageAudio) {
				logger.Info("Pausing at script_review; approval required before audio")
				return result, nil
			}
		}
	}

	logger.Info("Pipeline chain completed", "stages_completed", result.StagesCompleted)
	return result, nil
}

// runStageJob runs one content stage under its own job row so execution
// history is durable per stage, not just per chain.
func (p *Pipeline) runStageJob(ctx context.Context, episodeID, stage string, params models.WorkParams) (*StageOutcome, error) {
	now := time.Now()
	j, err := p.client.Job.Create().
		SetID(uuid.New().String()).
		SetEpisodeID(episodeID).
		SetStage(stage).
		SetStatus(job.StatusRunning).
		SetInputParams(&params).
		SetStartedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create stage job: %w", err)
	}

	outcome, runErr := p.RunStage(ctx, episodeID, stage, params)

	// Job finalization must survive a cancelled stage context. The write is
	// conditional on the row still being running so a cancel finalized by
	// another pod is never overwritten.
	finCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if runErr != nil {
		status := job.StatusFailed
		if ctx.Err() != nil {
			status = job.StatusCancelled
		}
		if err := p.client.Job.Update().
			Where(job.IDEQ(j.ID), job.StatusEQ(job.StatusRunning)).
			SetStatus(status).
			SetErrorMessage(runErr.Error()).
			SetCompletedAt(time.Now()).
			Exec(finCtx); err != nil {
			slog.Error("Failed to finalize stage job", "job_id", j.ID, "error", err)
		}
		return nil, runErr
	}

	if err := p.client.Job.Update().
		Where(job.IDEQ(j.ID), job.StatusEQ(job.StatusRunning)).
		SetStatus(job.StatusCompleted).
		SetResult(&models.JobResult{
			AssetIDs:   outcome.AssetIDs,
			CostUSD:    outcome.Usage.CostUSD,
			TokensUsed: outcome.Usage.Tokens(),
			DurationS:  outcome.DurationS,
			Cached:     outcome.Cached,
		}).
		SetCostUsd(outcome.Usage.CostUSD).
		SetTokensUsed(outcome.Usage.Tokens()).
		SetCompletedAt(time.Now()).
		Exec(finCtx); err != nil {
		slog.Error("Failed to finalize stage job", "job_id", j.ID, "error", err)
	}
	return outcome, nil
}

// enterScriptReview advances scripting → script_review.
func (p *Pipeline) enterScriptReview(ctx context.Context, episodeID string) error {
	err := p.client.Episode.Update().
		Where(episode.IDEQ(episodeID), episode.StatusEQ(episode.StatusScripting)).
		SetStatus(episode.StatusScriptReview).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to enter script_review: %w", err)
	}
	return nil
}

// abandonChain marks the episode failed after a stage failure stopped the
// chain. Cancellation is not a failure; the episode keeps its cancelled
// status.
func (p *Pipeline) abandonChain(episodeID string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if services.IsKind(cause, services.KindValidation) {
		return
	}
	ep, err := p.client.Episode.Get(ctx, episodeID)
	if err != nil || ep.Status == episode.StatusCancelled {
		return
	}
	if err := p.client.Episode.UpdateOneID(episodeID).
		SetStatus(episode.StatusFailed).
		SetLastError(cause.Error()).
		SetRetryCount(ep.RetryCount + 1).
		Exec(ctx); err != nil {
		slog.Error("Failed to mark episode failed", "episode_id", episodeID, "error", err)
	}
}

func chainIncludes(stages []string, stage string) bool {
	for _, s := range stages {
		if s == stage {
			return true
		}
	}
	return false
}
