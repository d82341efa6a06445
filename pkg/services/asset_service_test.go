package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
	testdb "github.com/showforge/showforge/test/database"
)

func createAsset(t *testing.T, client *ent.Client, req models.CreateAssetRequest) *ent.Asset {
	t.Helper()
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	a, err := services.CreateAssetTx(ctx, tx, req)
	if err != nil {
		_ = tx.Rollback()
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit())
	return a
}

func TestAssetVersioning(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	assets := services.NewAssetService(client)
	ep := seedEpisode(t, client)

	v, err := assets.NextVersion(ctx, ep.ID, "audio")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	a1 := createAsset(t, client, models.CreateAssetRequest{
		EpisodeID: ep.ID,
		Type:      "audio",
		URI:       "s3://assets/episodes/" + ep.ID + "/audio_v1.mp3",
		Version:   1,
		IsPrimary: true,
	})

	v, err = assets.NextVersion(ctx, ep.ID, "audio")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	// Soft-deleted rows still count: keys are never reused.
	err = client.Asset.UpdateOneID(a1.ID).SetDeletedAt(time.Now()).Exec(ctx)
	require.NoError(t, err)

	v, err = assets.NextVersion(ctx, ep.ID, "audio")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestCreateAsset_PrimaryDemotion(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	assets := services.NewAssetService(client)
	ep := seedEpisode(t, client)

	a1 := createAsset(t, client, models.CreateAssetRequest{
		EpisodeID: ep.ID,
		Type:      "script",
		URI:       "s3://scripts/episodes/" + ep.ID + "/script_v1.md",
		Version:   1,
		IsPrimary: true,
	})
	a2 := createAsset(t, client, models.CreateAssetRequest{
		EpisodeID: ep.ID,
		Type:      "script",
		URI:       "s3://scripts/episodes/" + ep.ID + "/script_v2.md",
		Version:   2,
		IsPrimary: true,
	})

	primary, err := assets.GetPrimary(ctx, ep.ID, "script")
	require.NoError(t, err)
	assert.Equal(t, a2.ID, primary.ID, "the newer primary wins")

	old, err := client.Asset.Get(ctx, a1.ID)
	require.NoError(t, err)
	assert.False(t, old.IsPrimary, "the previous primary was demoted")

	list, err := assets.ListByEpisode(ctx, ep.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreateAsset_Validation(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = services.CreateAssetTx(ctx, tx, models.CreateAssetRequest{Type: "audio", URI: "s3://x/y"})
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	_, err = services.CreateAssetTx(ctx, tx, models.CreateAssetRequest{EpisodeID: "ep", Type: "audio"})
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestGetPrimary_NotFound(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	assets := services.NewAssetService(client)
	ep := seedEpisode(t, client)

	_, err := assets.GetPrimary(context.Background(), ep.ID, "audio")
	require.Error(t, err)
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}
