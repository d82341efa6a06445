package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
	testdb "github.com/showforge/showforge/test/database"
)

func TestCreateEpisode(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	episodes := services.NewEpisodeService(client)

	ch, err := services.NewChannelService(client).CreateChannel(ctx, models.CreateChannelRequest{
		Slug:        "tech-daily",
		Name:        "Tech Daily",
		AutoAdvance: true,
	})
	require.NoError(t, err)

	t.Run("defaults from the channel", func(t *testing.T) {
		ep, err := episodes.CreateEpisode(ctx, models.CreateEpisodeRequest{
			ChannelID: ch.ID,
			Idea:      models.IdeaRecord{Brief: "why caches lie"},
		})
		require.NoError(t, err)
		assert.Equal(t, episode.StatusIdea, ep.Status)
		assert.Equal(t, episode.IdeaSourceManual, ep.IdeaSource)
		assert.True(t, ep.AutoAdvance, "inherited from the channel")
		assert.Equal(t, 0, ep.Priority)
	})

	t.Run("auto_advance override", func(t *testing.T) {
		off := false
		ep, err := episodes.CreateEpisode(ctx, models.CreateEpisodeRequest{
			ChannelID:   ch.ID,
			Idea:        models.IdeaRecord{Brief: "brief"},
			AutoAdvance: &off,
		})
		require.NoError(t, err)
		assert.False(t, ep.AutoAdvance)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateEpisodeRequest
		}{
			{"missing channel", models.CreateEpisodeRequest{Idea: models.IdeaRecord{Brief: "b"}}},
			{"missing brief", models.CreateEpisodeRequest{ChannelID: ch.ID}},
			{"priority out of range", models.CreateEpisodeRequest{
				ChannelID: ch.ID, Idea: models.IdeaRecord{Brief: "b"}, Priority: 5,
			}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := episodes.CreateEpisode(ctx, tt.req)
				require.Error(t, err)
				assert.Equal(t, services.KindValidation, services.KindOf(err))
			})
		}
	})

	t.Run("unknown channel", func(t *testing.T) {
		_, err := episodes.CreateEpisode(ctx, models.CreateEpisodeRequest{
			ChannelID: "nope",
			Idea:      models.IdeaRecord{Brief: "b"},
		})
		require.Error(t, err)
		assert.Equal(t, services.KindNotFound, services.KindOf(err))
	})
}

func TestApproveScript(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	episodes := services.NewEpisodeService(client)
	ep := seedEpisode(t, client)

	_, err := episodes.ApproveScript(ctx, ep.ID)
	require.Error(t, err, "the gate is only open in script_review")
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	err = client.Episode.UpdateOneID(ep.ID).
		SetStatus(episode.StatusScriptReview).
		Exec(ctx)
	require.NoError(t, err)

	got, err := episodes.ApproveScript(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, ep.ID, got.ID)
}

func TestCancelEpisode(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	episodes := services.NewEpisodeService(client)
	jobs := services.NewJobService(client)
	ep := seedEpisode(t, client)

	j, err := jobs.DispatchStage(ctx, ep.ID, models.StagePlanning, models.WorkParams{}, false)
	require.NoError(t, err)

	n, err := episodes.CancelEpisode(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := episodes.GetEpisode(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.StatusCancelled, got.Status)

	jGot, err := jobs.GetJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, jGot.Status)

	// Idempotent: nothing left to cancel.
	n, err = episodes.CancelEpisode(ctx, ep.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPipelineStatus(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	episodes := services.NewEpisodeService(client)
	jobs := services.NewJobService(client)
	ep := seedEpisode(t, client)

	started := time.Now().Add(-30 * time.Second)
	done := time.Now()
	err := client.Episode.UpdateOneID(ep.ID).
		SetStatus(episode.StatusPlanning).
		SetPipelineState(models.PipelineState{
			models.StagePlanning: {
				Status:      models.StageStatusCompleted,
				StartedAt:   &started,
				CompletedAt: &done,
				UpdatedAt:   done,
				Attempts:    1,
			},
		}).
		Exec(ctx)
	require.NoError(t, err)

	j, err := jobs.DispatchStage(ctx, ep.ID, models.StageScripting, models.WorkParams{}, false)
	require.NoError(t, err)

	report, err := episodes.PipelineStatus(ctx, ep.ID)
	require.NoError(t, err)

	assert.Equal(t, "planning", report.Status)
	assert.Equal(t, 1, report.Progress.Completed)
	assert.Equal(t, len(models.StageOrder), report.Progress.Total)
	assert.InDelta(t, 100.0/6, report.Progress.Percent, 0.01)

	planning := report.Stages[models.StagePlanning]
	assert.Equal(t, models.StageStatusCompleted, planning.Status)
	assert.InDelta(t, 30, planning.DurationS, 1)

	require.Len(t, report.ActiveJobs, 1)
	assert.Equal(t, j.ID, report.ActiveJobs[0].JobID)
	assert.Equal(t, models.StageScripting, report.ActiveJobs[0].Stage)
}

func TestSoftDeleteOldEpisodes(t *testing.T) {
	dbc := testdb.NewTestClient(t)
	client := dbc.Client
	ctx := context.Background()
	episodes := services.NewEpisodeService(client)

	_, err := episodes.SoftDeleteOldEpisodes(ctx, 0)
	require.Error(t, err)
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	oldPublished := seedEpisode(t, client)
	err = client.Episode.UpdateOneID(oldPublished.ID).
		SetStatus(episode.StatusPublished).
		Exec(ctx)
	require.NoError(t, err)

	oldActive := seedEpisode(t, client)
	err = client.Episode.UpdateOneID(oldActive.ID).
		SetStatus(episode.StatusAudio).
		Exec(ctx)
	require.NoError(t, err)

	fresh := seedEpisode(t, client)
	err = client.Episode.UpdateOneID(fresh.ID).
		SetStatus(episode.StatusCancelled).
		Exec(ctx)
	require.NoError(t, err)

	// Age the first two past the retention window. created_at is immutable
	// through ent, so go through SQL.
	cutoff := time.Now().AddDate(0, 0, -40)
	for _, id := range []string{oldPublished.ID, oldActive.ID} {
		_, err := dbc.DB().ExecContext(ctx, "UPDATE episodes SET created_at = $1 WHERE id = $2", cutoff, id)
		require.NoError(t, err)
	}

	ids, err := episodes.SoftDeleteOldEpisodes(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{oldPublished.ID}, ids,
		"only terminal episodes past the window are retired")

	_, err = episodes.GetEpisode(ctx, oldPublished.ID)
	require.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))

	_, err = episodes.GetEpisode(ctx, fresh.ID)
	assert.NoError(t, err, "recent terminal episodes stay")
}
