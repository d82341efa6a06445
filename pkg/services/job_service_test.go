package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
	testdb "github.com/showforge/showforge/test/database"
)

func seedEpisode(t *testing.T, client *ent.Client) *ent.Episode {
	t.Helper()
	ctx := context.Background()

	ch, err := services.NewChannelService(client).CreateChannel(ctx, models.CreateChannelRequest{
		Slug: "tech-daily",
		Name: "Tech Daily",
	})
	require.NoError(t, err)

	ep, err := services.NewEpisodeService(client).CreateEpisode(ctx, models.CreateEpisodeRequest{
		ChannelID: ch.ID,
		Idea:      models.IdeaRecord{Brief: "why caches lie"},
	})
	require.NoError(t, err)
	return ep
}

func markCompleted(t *testing.T, client *ent.Client, ep *ent.Episode, status episode.Status, stages ...string) {
	t.Helper()
	state := models.PipelineState{}
	for _, s := range stages {
		state[s] = models.StageState{Status: models.StageStatusCompleted, UpdatedAt: time.Now()}
	}
	err := client.Episode.UpdateOneID(ep.ID).
		SetStatus(status).
		SetPipelineState(state).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestDispatchStage(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	jobs := services.NewJobService(client)
	ep := seedEpisode(t, client)

	j, err := jobs.DispatchStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{}, false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, j.Status)
	assert.Equal(t, models.StagePlanning, j.Stage)
	assert.Equal(t, ep.ID, j.EpisodeID)

	// A second dispatch hits the active-job guard.
	_, err = jobs.DispatchStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{}, false)
	require.Error(t, err)
	assert.Equal(t, services.KindConflict, services.KindOf(err))

	// force does not bypass the active-job guard either.
	_, err = jobs.DispatchStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{}, true)
	require.Error(t, err)
	assert.Equal(t, services.KindConflict, services.KindOf(err))
}

func TestDispatchStage_Guards(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	jobs := services.NewJobService(client)
	ep := seedEpisode(t, client)

	t.Run("wrong episode state", func(t *testing.T) {
		_, err := jobs.DispatchStage(ctx, ep.ID, models.StageAudio, models.WorkParams{}, false)
		require.Error(t, err)
		assert.Equal(t, services.KindValidation, services.KindOf(err))
	})

	t.Run("unknown stage", func(t *testing.T) {
		_, err := jobs.DispatchStage(ctx, ep.ID, "publish", models.WorkParams{}, false)
		require.Error(t, err)
		assert.Equal(t, services.KindValidation, services.KindOf(err))
	})

	t.Run("unknown episode", func(t *testing.T) {
		_, err := jobs.DispatchStage(ctx, "nope", models.StagePlanning, models.WorkParams{}, false)
		require.Error(t, err)
		assert.Equal(t, services.KindNotFound, services.KindOf(err))
	})
}

func TestDispatchStage_CompletedNeedsForce(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	jobs := services.NewJobService(client)
	ep := seedEpisode(t, client)
	markCompleted(t, client, ep, episode.StatusPlanning, models.StagePlanning)

	_, err := jobs.DispatchStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{}, false)
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
	assert.Contains(t, err.Error(), "force")

	j, err := jobs.DispatchStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{}, true)
	require.NoError(t, err)
	assert.True(t, j.InputParams.Force)
}

func TestDispatchStage_EntersReviewAfterStandaloneScripting(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	jobs := services.NewJobService(client)

	// A standalone scripting job leaves the episode at scripting with the
	// stage completed. Requesting a review-gated stage must not bounce off
	// its precondition forever.
	ep := seedEpisode(t, client)
	markCompleted(t, client, ep, episode.StatusScripting, models.StagePlanning, models.StageScripting)

	j, err := jobs.DispatchStage(ctx, ep.ID, models.StageMetadata, models.WorkParams{}, false)
	require.NoError(t, err)
	assert.Equal(t, models.StageMetadata, j.Stage)

	got, err := client.Episode.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusScriptReview, got.Status)

	// Without a completed scripting stage the gate stays shut.
	early := seedEpisode(t, client)
	markCompleted(t, client, early, episode.StatusScripting, models.StagePlanning)

	_, err = jobs.DispatchStage(ctx, early.ID, models.StageMetadata, models.WorkParams{}, false)
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	got, err = client.Episode.Get(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusScripting, got.Status)
}

func TestDispatchChain(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	jobs := services.NewJobService(client)

	t.Run("full pipeline from idea", func(t *testing.T) {
		ep := seedEpisode(t, client)
		j, err := jobs.DispatchChain(ctx, ep.ID, models.ChainFullPipeline, models.WorkParams{})
		require.NoError(t, err)
		assert.Equal(t, models.ChainFullPipeline, j.Stage)
		assert.Equal(t, job.StatusQueued, j.Status)
	})

	t.Run("mid-flight episode rejected", func(t *testing.T) {
		ep := seedEpisode(t, client)
		markCompleted(t, client, ep, episode.StatusScripting, models.StagePlanning, models.StageScripting)

		_, err := jobs.DispatchChain(ctx, ep.ID, models.ChainFullPipeline, models.WorkParams{})
		require.Error(t, err)
		assert.Equal(t, services.KindValidation, services.KindOf(err))
	})

	t.Run("resume requires completed prefix", func(t *testing.T) {
		ep := seedEpisode(t, client)
		markCompleted(t, client, ep, episode.StatusFailed, models.StagePlanning)

		_, err := jobs.DispatchChain(ctx, ep.ID, models.ChainFromStage(models.StageAudio), models.WorkParams{})
		require.Error(t, err)
		assert.Equal(t, services.KindValidation, services.KindOf(err))
		assert.Contains(t, err.Error(), models.StageScripting)
	})

	t.Run("resume with completed prefix", func(t *testing.T) {
		ep := seedEpisode(t, client)
		markCompleted(t, client, ep, episode.StatusFailed, models.StagePlanning, models.StageScripting)

		j, err := jobs.DispatchChain(ctx, ep.ID, models.ChainFromStage(models.StageAudio), models.WorkParams{})
		require.NoError(t, err)
		assert.Equal(t, "pipeline_from_audio", j.Stage)
	})

	t.Run("skip relaxes the prefix check", func(t *testing.T) {
		ep := seedEpisode(t, client)
		markCompleted(t, client, ep, episode.StatusFailed, models.StagePlanning)

		j, err := jobs.DispatchChain(ctx, ep.ID, models.ChainFromStage(models.StageAudio),
			models.WorkParams{Skip: []string{models.StageScripting}})
		require.NoError(t, err)
		assert.Equal(t, []string{models.StageScripting}, j.InputParams.Skip)
	})

	t.Run("bad chain name", func(t *testing.T) {
		ep := seedEpisode(t, client)
		_, err := jobs.DispatchChain(ctx, ep.ID, "pipeline_from_publish", models.WorkParams{})
		require.Error(t, err)
		assert.Equal(t, services.KindValidation, services.KindOf(err))
	})
}

func TestRetryJob(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	jobs := services.NewJobService(client)
	ep := seedEpisode(t, client)

	j, err := jobs.DispatchStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{}, false)
	require.NoError(t, err)

	t.Run("only failed jobs retry", func(t *testing.T) {
		_, err := jobs.RetryJob(ctx, j.ID)
		require.Error(t, err)
		assert.Equal(t, services.KindValidation, services.KindOf(err))
	})

	now := time.Now()
	err = client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusFailed).
		SetStartedAt(now).
		SetCompletedAt(now).
		SetErrorMessage("external_service: provider 502").
		Exec(ctx)
	require.NoError(t, err)

	t.Run("failed job goes back to queued", func(t *testing.T) {
		retried, err := jobs.RetryJob(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusQueued, retried.Status)
		assert.Equal(t, 1, retried.RetryCount)
		assert.Nil(t, retried.StartedAt)
		assert.Nil(t, retried.CompletedAt)
		assert.Nil(t, retried.ErrorMessage)
	})

	t.Run("retries are bounded", func(t *testing.T) {
		err := client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusFailed).
			SetRetryCount(3).
			Exec(ctx)
		require.NoError(t, err)

		_, err = jobs.RetryJob(ctx, j.ID)
		require.Error(t, err)
		assert.Equal(t, services.KindValidation, services.KindOf(err))
		assert.Contains(t, err.Error(), "exhausted")
	})
}

func TestCancelJob(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	jobs := services.NewJobService(client)
	ep := seedEpisode(t, client)

	j, err := jobs.DispatchStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{}, false)
	require.NoError(t, err)

	cancelled, err := jobs.CancelJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CompletedAt)

	// Idempotent.
	again, err := jobs.CancelJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, again.Status)

	// Completed jobs are immutable history.
	err = client.Job.UpdateOneID(j.ID).SetStatus(job.StatusCompleted).Exec(ctx)
	require.NoError(t, err)
	_, err = jobs.CancelJob(ctx, j.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestActiveJobs(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	jobs := services.NewJobService(client)
	ep := seedEpisode(t, client)

	active, err := jobs.ActiveJobs(ctx, ep.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	j, err := jobs.DispatchStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{}, false)
	require.NoError(t, err)

	active, err = jobs.ActiveJobs(ctx, ep.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, j.ID, active[0].ID)
}
