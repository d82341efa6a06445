package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
	testdb "github.com/showforge/showforge/test/database"
)

func TestRetireOldEpisodes(t *testing.T) {
	dbc := testdb.NewTestClient(t)
	client := dbc.Client
	ctx := context.Background()
	episodes := services.NewEpisodeService(client)

	ch, err := services.NewChannelService(client).CreateChannel(ctx, models.CreateChannelRequest{
		Slug: "retention",
		Name: "Retention",
	})
	require.NoError(t, err)

	makeEpisode := func(status episode.Status, age time.Duration) string {
		ep, err := episodes.CreateEpisode(ctx, models.CreateEpisodeRequest{
			ChannelID: ch.ID,
			Idea:      models.IdeaRecord{Brief: "old content"},
		})
		require.NoError(t, err)
		require.NoError(t, client.Episode.UpdateOneID(ep.ID).SetStatus(status).Exec(ctx))
		_, err = dbc.DB().ExecContext(ctx,
			"UPDATE episodes SET created_at = $1 WHERE id = $2", time.Now().Add(-age), ep.ID)
		require.NoError(t, err)
		return ep.ID
	}

	expired := makeEpisode(episode.StatusPublished, 45*24*time.Hour)
	inFlight := makeEpisode(episode.StatusAudio, 45*24*time.Hour)
	recent := makeEpisode(episode.StatusCancelled, 24*time.Hour)

	// A nil store means no artifact purge, which must not block retirement.
	svc := NewService(&config.RetentionConfig{
		EpisodeRetentionDays: 30,
		CleanupInterval:      time.Hour,
	}, episodes, nil)
	svc.retireOldEpisodes(ctx)

	_, err = episodes.GetEpisode(ctx, expired)
	assert.Equal(t, services.KindNotFound, services.KindOf(err), "terminal past the window is retired")

	_, err = episodes.GetEpisode(ctx, inFlight)
	assert.NoError(t, err, "in-flight episodes are never retired")

	_, err = episodes.GetEpisode(ctx, recent)
	assert.NoError(t, err, "recent terminal episodes stay")
}

func TestServiceStartStop(t *testing.T) {
	dbc := testdb.NewTestClient(t)
	episodes := services.NewEpisodeService(dbc.Client)

	svc := NewService(&config.RetentionConfig{
		EpisodeRetentionDays: 30,
		CleanupInterval:      10 * time.Millisecond,
	}, episodes, nil)

	svc.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	svc.Stop()

	// Stop is idempotent and Start after Stop is a no-op guard, not a crash.
	svc.Stop()
}
