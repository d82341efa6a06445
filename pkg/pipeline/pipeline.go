// Package pipeline holds the stage executors and the chain orchestrator. Each
// executor follows the same four-step contract: load inputs, call providers,
// store artifacts, then commit content slots + pipeline state + asset rows in
// one transaction.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/providers"
	"github.com/showforge/showforge/pkg/services"
	"github.com/showforge/showforge/pkg/storage"
)

// Pipeline executes content stages against an episode. Provider clients for
// audio/avatar/broll may be nil; their stages then fail with a validation
// error when invoked.
type Pipeline struct {
	client *ent.Client
	store  *storage.Store
	text   *providers.TextClient
	speech *providers.SpeechClient
	avatar *providers.AvatarClient
	video  *providers.VideoClient
}

// New creates a Pipeline.
func New(client *ent.Client, store *storage.Store, text *providers.TextClient, speech *providers.SpeechClient, avatar *providers.AvatarClient, video *providers.VideoClient) *Pipeline {
	return &Pipeline{
		client: client,
		store:  store,
		text:   text,
		speech: speech,
		avatar: avatar,
		video:  video,
	}
}

// StageOutcome is what one stage execution produced.
type StageOutcome struct {
	AssetIDs  []string
	Usage     providers.Usage
	DurationS float64
	ClipCount int

	// Cached marks a no-op re-run of a completed stage.
	Cached bool
}

// stageInput bundles what every executor needs.
type stageInput struct {
	episode *ent.Episode
	channel *ent.Channel
	params  models.WorkParams
}

// RunStage executes one content stage. Re-running a completed stage without
// force is a no-op returning the cached result reference. Errors are tagged
// with a kind; the caller (worker or orchestrator) owns the job row.
func (p *Pipeline) RunStage(ctx context.Context, episodeID, stage string, params models.WorkParams) (*StageOutcome, error) {
	if !models.IsStage(stage) {
		return nil, services.E(services.KindValidation, "unknown stage %q", stage)
	}

	ep, err := p.client.Episode.Query().
		Where(episode.IDEQ(episodeID), episode.DeletedAtIsNil()).
		WithChannel().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.E(services.KindNotFound, "episode %s not found", episodeID)
		}
		return nil, fmt.Errorf("failed to load episode: %w", err)
	}
	ch := ep.Edges.Channel
	if ch == nil {
		return nil, services.E(services.KindPipeline, "episode %s has no channel", episodeID)
	}

	if state, ok := ep.PipelineState[stage]; ok && state.Status == models.StageStatusCompleted && !params.Force {
		slog.Info("Stage already completed, returning cached result",
			"episode_id", episodeID, "stage", stage)
		return &StageOutcome{
			AssetIDs:  state.AssetIDs,
			DurationS: state.DurationS,
			ClipCount: state.ClipCount,
			Cached:    true,
		}, nil
	}

	if err := services.CheckStagePrecondition(ep, stage); err != nil {
		return nil, err
	}

	if err := p.beginStage(ctx, ep, stage); err != nil {
		return nil, err
	}
	// Re-read so executors see the bumped pipeline_state.
	ep, err = p.client.Episode.Get(ctx, episodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload episode: %w", err)
	}
	ep.Edges.Channel = ch

	in := &stageInput{episode: ep, channel: ch, params: params}

	var outcome *StageOutcome
	switch stage {
	case models.StagePlanning:
		outcome, err = p.runPlanning(ctx, in)
	case models.StageScripting:
		outcome, err = p.runScripting(ctx, in)
	case models.StageMetadata:
		outcome, err = p.runMetadata(ctx, in)
	case models.StageAudio:
		outcome, err = p.runAudio(ctx, in)
	case models.StageAvatar:
		outcome, err = p.runAvatar(ctx, in)
	case models.StageBroll:
		outcome, err = p.runBroll(ctx, in)
	}
	if err != nil {
		p.failStage(ep.ID, stage, err)
		return nil, err
	}
	return outcome, nil
}

// beginStage records the stage as running in pipeline_state and bumps its
// attempt counter.
func (p *Pipeline) beginStage(ctx context.Context, ep *ent.Episode, stage string) error {
	now := time.Now()
	state := ep.PipelineState
	if state == nil {
		state = models.PipelineState{}
	}
	entry := state[stage]
	entry.Status = models.StageStatusRunning
	entry.StartedAt = &now
	entry.CompletedAt = nil
	entry.Error = ""
	entry.UpdatedAt = now
	entry.Attempts++
	state[stage] = entry

	if err := p.client.Episode.UpdateOneID(ep.ID).
		SetPipelineState(state).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark stage running: %w", err)
	}
	ep.PipelineState = state
	return nil
}

// commitStage runs the executor's persistence step: content-slot writes and
// asset rows via apply, plus the pipeline-state completion record and the
// lifecycle advance, all in one transaction. Returns the created asset ids.
func (p *Pipeline) commitStage(ctx context.Context, ep *ent.Episode, stage string, outcome *StageOutcome, apply func(tx *ent.Tx) ([]string, error)) error {
	// Cooperative cancellation checkpoint before the commit.
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := p.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start commit transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// A cancel served by any pod while this stage ran is already durable.
	// Terminal statuses are never overwritten, so re-check under the row lock
	// before writing anything.
	cur, err := tx.Episode.Query().
		Where(episode.IDEQ(ep.ID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock episode for commit: %w", err)
	}
	if cur.Status == episode.StatusCancelled {
		return context.Canceled
	}

	assetIDs, err := apply(tx)
	if err != nil {
		return err
	}
	outcome.AssetIDs = assetIDs

	now := time.Now()
	state := ep.PipelineState
	entry := state[stage]
	entry.Status = models.StageStatusCompleted
	entry.CompletedAt = &now
	entry.UpdatedAt = now
	entry.Error = ""
	entry.CostUSD += outcome.Usage.CostUSD
	entry.TokensUsed += outcome.Usage.Tokens()
	entry.AssetIDs = assetIDs
	entry.DurationS = outcome.DurationS
	entry.ClipCount = outcome.ClipCount
	state[stage] = entry

	update := tx.Episode.UpdateOneID(ep.ID).
		SetPipelineState(state).
		ClearLastError()
	if next, ok := services.StageResultStatus(stage); ok {
		update.SetStatus(next)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to commit stage state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stage: %w", err)
	}
	ep.PipelineState = state
	return nil
}

// failStage records a stage failure (or cancellation) in pipeline_state and
// the episode's last_error. Uses a background context: the stage context is
// often already cancelled or expired when this runs.
func (p *Pipeline) failStage(episodeID, stage string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ep, err := p.client.Episode.Get(ctx, episodeID)
	if err != nil {
		slog.Error("Failed to load episode for failure record",
			"episode_id", episodeID, "stage", stage, "error", err)
		return
	}

	status := models.StageStatusFailed
	if errors.Is(cause, context.Canceled) {
		status = models.StageStatusCancelled
	}

	now := time.Now()
	state := ep.PipelineState
	if state == nil {
		state = models.PipelineState{}
	}
	entry := state[stage]
	entry.Status = status
	entry.Error = cause.Error()
	entry.UpdatedAt = now
	state[stage] = entry

	if err := p.client.Episode.UpdateOneID(episodeID).
		SetPipelineState(state).
		SetLastError(cause.Error()).
		Exec(ctx); err != nil {
		slog.Error("Failed to record stage failure",
			"episode_id", episodeID, "stage", stage, "error", err)
	}
}
