package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
	testdb "github.com/showforge/showforge/test/database"
)

func TestCreateChannel(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	channels := services.NewChannelService(client)

	ch, err := channels.CreateChannel(ctx, models.CreateChannelRequest{
		Slug:         "tech-daily",
		Name:         "Tech Daily",
		VoiceProfile: &models.VoiceProfile{VoiceID: "v-1"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ch.ID)
	assert.Equal(t, "tech-daily", ch.Slug)

	t.Run("slug conflict", func(t *testing.T) {
		_, err := channels.CreateChannel(ctx, models.CreateChannelRequest{
			Slug: "tech-daily",
			Name: "Copycat",
		})
		require.Error(t, err)
		assert.Equal(t, services.KindConflict, services.KindOf(err))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := channels.CreateChannel(ctx, models.CreateChannelRequest{Name: "No Slug"})
		require.Error(t, err)
		assert.Equal(t, services.KindValidation, services.KindOf(err))

		_, err = channels.CreateChannel(ctx, models.CreateChannelRequest{Slug: "no-name"})
		require.Error(t, err)
		assert.Equal(t, services.KindValidation, services.KindOf(err))
	})

	t.Run("lookup by id and slug", func(t *testing.T) {
		byID, err := channels.GetChannel(ctx, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, ch.Slug, byID.Slug)

		bySlug, err := channels.GetChannelBySlug(ctx, "tech-daily")
		require.NoError(t, err)
		assert.Equal(t, ch.ID, bySlug.ID)

		_, err = channels.GetChannel(ctx, "missing")
		assert.Equal(t, services.KindNotFound, services.KindOf(err))
	})
}

func TestDeleteChannel(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	channels := services.NewChannelService(client)
	episodes := services.NewEpisodeService(client)

	ch, err := channels.CreateChannel(ctx, models.CreateChannelRequest{
		Slug: "tech-daily",
		Name: "Tech Daily",
	})
	require.NoError(t, err)

	ep, err := episodes.CreateEpisode(ctx, models.CreateEpisodeRequest{
		ChannelID: ch.ID,
		Idea:      models.IdeaRecord{Brief: "brief"},
	})
	require.NoError(t, err)

	// Live episodes block a plain delete.
	err = channels.DeleteChannel(ctx, ch.ID, false)
	require.Error(t, err)
	assert.Equal(t, services.KindConflict, services.KindOf(err))

	err = channels.DeleteChannel(ctx, ch.ID, true)
	require.NoError(t, err)

	_, err = channels.GetChannel(ctx, ch.ID)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
	_, err = episodes.GetEpisode(ctx, ep.ID)
	assert.Equal(t, services.KindNotFound, services.KindOf(err), "cascade soft-deletes episodes")

	// The slug is free again for a live replacement.
	_, err = channels.CreateChannel(ctx, models.CreateChannelRequest{
		Slug: "tech-daily",
		Name: "Tech Daily v2",
	})
	require.NoError(t, err)

	err = channels.DeleteChannel(ctx, "missing", false)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}
