package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStage(t *testing.T) {
	for _, s := range StageOrder {
		assert.True(t, IsStage(s), s)
	}
	assert.False(t, IsStage("publish"))
	assert.False(t, IsStage(ChainFullPipeline))
}

func TestStageIndex(t *testing.T) {
	assert.Equal(t, 0, StageIndex(StagePlanning))
	assert.Equal(t, 3, StageIndex(StageAudio))
	assert.Equal(t, -1, StageIndex("publish"))
}

func TestIsChainStage(t *testing.T) {
	assert.True(t, IsChainStage(ChainFullPipeline))
	assert.True(t, IsChainStage(ChainStage1Pipeline))
	assert.True(t, IsChainStage("pipeline_from_audio"))
	assert.False(t, IsChainStage(StageAudio))
	assert.False(t, IsChainStage(""))
}

func TestChainStages(t *testing.T) {
	stages, err := ChainStages(ChainFullPipeline)
	require.NoError(t, err)
	assert.Equal(t, StageOrder, stages)

	stages, err = ChainStages(ChainStage1Pipeline)
	require.NoError(t, err)
	assert.Equal(t, []string{StagePlanning, StageScripting, StageMetadata}, stages)

	stages, err = ChainStages(ChainFromStage(StageAudio))
	require.NoError(t, err)
	assert.Equal(t, []string{StageAudio, StageAvatar, StageBroll}, stages)

	_, err = ChainStages("pipeline_from_publish")
	assert.Error(t, err)
	_, err = ChainStages(StageAudio)
	assert.Error(t, err)
}

func TestPipelineState(t *testing.T) {
	ps := PipelineState{
		StagePlanning:  {Status: StageStatusCompleted},
		StageScripting: {Status: StageStatusFailed},
	}

	assert.True(t, ps.Completed(StagePlanning))
	assert.False(t, ps.Completed(StageScripting))
	assert.False(t, ps.Completed(StageAudio), "absent stages are not completed")
	assert.Equal(t, 1, ps.CompletedCount(StageOrder))
}
