// Package models defines the typed records shared between the services,
// pipeline, and API layers. Everything persisted into a JSON column goes
// through a type in this package; no string-keyed access elsewhere.
package models

import (
	"fmt"
	"strings"
)

// Stage names. The pipeline dispatches these in the canonical order below.
const (
	StagePlanning  = "planning"
	StageScripting = "scripting"
	StageMetadata  = "metadata"
	StageAudio     = "audio"
	StageAvatar    = "avatar"
	StageBroll     = "broll"
)

// Orchestrator tracking-job pseudo-stages.
const (
	ChainFullPipeline   = "full_pipeline"
	ChainStage1Pipeline = "stage_1_pipeline"
	chainFromPrefix     = "pipeline_from_"
)

// StageOrder is the canonical dispatch order of the content stages.
var StageOrder = []string{
	StagePlanning,
	StageScripting,
	StageMetadata,
	StageAudio,
	StageAvatar,
	StageBroll,
}

// Stage1Stages is the text-only front of the pipeline (plan, script, SEO).
var Stage1Stages = []string{StagePlanning, StageScripting, StageMetadata}

// IsStage reports whether name is one of the canonical content stages.
func IsStage(name string) bool {
	for _, s := range StageOrder {
		if s == name {
			return true
		}
	}
	return false
}

// StageIndex returns the position of a stage in the canonical order, or -1.
func StageIndex(name string) int {
	for i, s := range StageOrder {
		if s == name {
			return i
		}
	}
	return -1
}

// ChainFromStage builds the tracking-job stage name for a resumed pipeline.
func ChainFromStage(start string) string {
	return chainFromPrefix + start
}

// IsChainStage reports whether a job stage names an orchestrator tracking job
// rather than a content stage.
func IsChainStage(stage string) bool {
	return stage == ChainFullPipeline ||
		stage == ChainStage1Pipeline ||
		strings.HasPrefix(stage, chainFromPrefix)
}

// ChainStages resolves the content stages a tracking job covers.
func ChainStages(chainStage string) ([]string, error) {
	switch {
	case chainStage == ChainFullPipeline:
		return StageOrder, nil
	case chainStage == ChainStage1Pipeline:
		return Stage1Stages, nil
	case strings.HasPrefix(chainStage, chainFromPrefix):
		start := strings.TrimPrefix(chainStage, chainFromPrefix)
		idx := StageIndex(start)
		if idx < 0 {
			return nil, fmt.Errorf("unknown start stage %q", start)
		}
		return StageOrder[idx:], nil
	default:
		return nil, fmt.Errorf("not a chain stage: %q", chainStage)
	}
}
