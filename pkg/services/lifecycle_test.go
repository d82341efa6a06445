package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/ent"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/pkg/models"
)

func TestNextStatus(t *testing.T) {
	next, ok := NextStatus(episode.StatusIdea)
	require.True(t, ok)
	assert.Equal(t, episode.StatusPlanning, next)

	next, ok = NextStatus(episode.StatusScripting)
	require.True(t, ok)
	assert.Equal(t, episode.StatusScriptReview, next)

	_, ok = NextStatus(episode.StatusPublished)
	assert.False(t, ok, "published is the end of the line")

	_, ok = NextStatus(episode.StatusFailed)
	assert.False(t, ok, "off-path states have no linear successor")
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(episode.StatusPlanning, episode.StatusScripting))
	assert.True(t, CanTransition(episode.StatusScriptReview, episode.StatusAudio))

	assert.False(t, CanTransition(episode.StatusPlanning, episode.StatusAudio), "no stage skipping")
	assert.False(t, CanTransition(episode.StatusScripting, episode.StatusPlanning), "no going back")

	// failed and cancelled are reachable from any in-progress state only.
	assert.True(t, CanTransition(episode.StatusAudio, episode.StatusFailed))
	assert.True(t, CanTransition(episode.StatusIdea, episode.StatusCancelled))
	assert.False(t, CanTransition(episode.StatusFailed, episode.StatusCancelled))
	assert.False(t, CanTransition(episode.StatusCancelled, episode.StatusFailed))
}

func TestStagePreconditionTable(t *testing.T) {
	tests := []struct {
		stage    string
		required episode.Status
	}{
		{models.StagePlanning, episode.StatusIdea},
		{models.StageScripting, episode.StatusPlanning},
		{models.StageMetadata, episode.StatusScriptReview},
		{models.StageAudio, episode.StatusScriptReview},
		{models.StageAvatar, episode.StatusAudio},
		{models.StageBroll, episode.StatusAudio},
	}
	for _, tt := range tests {
		got, ok := StagePrecondition(tt.stage)
		require.True(t, ok, tt.stage)
		assert.Equal(t, tt.required, got, tt.stage)
	}

	_, ok := StagePrecondition("publish")
	assert.False(t, ok)
}

func TestStageResultStatus(t *testing.T) {
	got, ok := StageResultStatus(models.StageScripting)
	require.True(t, ok)
	assert.Equal(t, episode.StatusScripting, got)

	_, ok = StageResultStatus(models.StageMetadata)
	assert.False(t, ok, "metadata populates episode_meta without a status change")
}

func TestNextStage(t *testing.T) {
	stage, ok := NextStage(episode.StatusIdea)
	require.True(t, ok)
	assert.Equal(t, models.StagePlanning, stage)

	stage, ok = NextStage(episode.StatusScriptReview)
	require.True(t, ok)
	assert.Equal(t, models.StageAudio, stage)

	_, ok = NextStage(episode.StatusBroll)
	assert.False(t, ok)
	_, ok = NextStage(episode.StatusFailed)
	assert.False(t, ok)
}

func TestCheckStagePrecondition(t *testing.T) {
	completed := func(stages ...string) models.PipelineState {
		ps := models.PipelineState{}
		for _, s := range stages {
			ps[s] = models.StageState{Status: models.StageStatusCompleted}
		}
		return ps
	}

	t.Run("exact required status", func(t *testing.T) {
		ep := &ent.Episode{ID: "ep", Status: episode.StatusIdea}
		assert.NoError(t, CheckStagePrecondition(ep, models.StagePlanning))
	})

	t.Run("status behind the requirement", func(t *testing.T) {
		ep := &ent.Episode{ID: "ep", Status: episode.StatusIdea}
		err := CheckStagePrecondition(ep, models.StageAudio)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("recovery of a failed episode with completed priors", func(t *testing.T) {
		ep := &ent.Episode{
			ID:            "ep",
			Status:        episode.StatusFailed,
			PipelineState: completed(models.StagePlanning, models.StageScripting),
		}
		assert.NoError(t, CheckStagePrecondition(ep, models.StageAudio))
	})

	t.Run("recovery blocked by a missing prior", func(t *testing.T) {
		ep := &ent.Episode{
			ID:            "ep",
			Status:        episode.StatusFailed,
			PipelineState: completed(models.StagePlanning),
		}
		err := CheckStagePrecondition(ep, models.StageAudio)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("past the requirement with completed priors", func(t *testing.T) {
		ep := &ent.Episode{
			ID:     "ep",
			Status: episode.StatusAvatar,
			PipelineState: completed(
				models.StagePlanning, models.StageScripting,
				models.StageAudio, models.StageAvatar,
			),
		}
		// broll after avatar: audio is the required status but the work is done.
		assert.NoError(t, CheckStagePrecondition(ep, models.StageBroll))
	})

	t.Run("unknown stage", func(t *testing.T) {
		ep := &ent.Episode{ID: "ep", Status: episode.StatusIdea}
		err := CheckStagePrecondition(ep, "publish")
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})
}

func TestErrorKinds(t *testing.T) {
	err := E(KindRateLimited, "slow down %d", 7)
	assert.Equal(t, "rate_limited: slow down 7", err.Error())
	assert.Equal(t, KindRateLimited, KindOf(err))
	assert.True(t, Retryable(err))

	assert.False(t, Retryable(E(KindValidation, "bad input")))
	assert.True(t, Retryable(E(KindStorageError, "s3 down")))
	assert.Equal(t, KindInternal, KindOf(assert.AnError))
	assert.True(t, IsKind(E(KindNotFound, "gone"), KindNotFound))
}
