package services

import (
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/pkg/models"
)

// lifecycleOrder is the linear progression of the episode state machine.
// failed and cancelled sit off-path and are reachable from any in-progress
// state.
var lifecycleOrder = []episode.Status{
	episode.StatusIdea,
	episode.StatusPlanning,
	episode.StatusScripting,
	episode.StatusScriptReview,
	episode.StatusAudio,
	episode.StatusAvatar,
	episode.StatusBroll,
	episode.StatusAssembly,
	episode.StatusReady,
	episode.StatusPublishing,
	episode.StatusPublished,
}

// stagePrecondition maps each stage to the episode status it requires.
var stagePrecondition = map[string]episode.Status{
	models.StagePlanning:  episode.StatusIdea,
	models.StageScripting: episode.StatusPlanning,
	models.StageMetadata:  episode.StatusScriptReview,
	models.StageAudio:     episode.StatusScriptReview,
	models.StageAvatar:    episode.StatusAudio,
	models.StageBroll:     episode.StatusAudio,
}

// stageResult maps each stage to the status it leaves the episode in.
// metadata is absent: it populates episode_meta without a status change.
var stageResult = map[string]episode.Status{
	models.StagePlanning:  episode.StatusPlanning,
	models.StageScripting: episode.StatusScripting,
	models.StageAudio:     episode.StatusAudio,
	models.StageAvatar:    episode.StatusAvatar,
	models.StageBroll:     episode.StatusBroll,
}

// gatingStages lists the stages that must be completed before the given stage
// may run when recovering a failed/cancelled episode. metadata never gates.
var gatingStages = map[string][]string{
	models.StagePlanning:  {},
	models.StageScripting: {models.StagePlanning},
	models.StageMetadata:  {models.StagePlanning, models.StageScripting},
	models.StageAudio:     {models.StagePlanning, models.StageScripting},
	models.StageAvatar:    {models.StagePlanning, models.StageScripting, models.StageAudio},
	models.StageBroll:     {models.StagePlanning, models.StageScripting, models.StageAudio},
}

// statusRank returns the position of s in the linear order, or -1 for the
// off-path terminals.
func statusRank(s episode.Status) int {
	for i, st := range lifecycleOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminalStatus reports whether the episode sits in an off-path terminal
// state.
func IsTerminalStatus(s episode.Status) bool {
	return s == episode.StatusFailed || s == episode.StatusCancelled
}

// NextStatus returns the successor in the linear order.
func NextStatus(s episode.Status) (episode.Status, bool) {
	r := statusRank(s)
	if r < 0 || r+1 >= len(lifecycleOrder) {
		return "", false
	}
	return lifecycleOrder[r+1], true
}

// CanTransition enforces the state-machine invariant: from S only to S+1, or
// to failed/cancelled from any in-progress state. Recovery of a failed or
// cancelled episode is an explicit reset, not a transition.
func CanTransition(from, to episode.Status) bool {
	if IsTerminalStatus(to) {
		return !IsTerminalStatus(from)
	}
	next, ok := NextStatus(from)
	return ok && next == to
}

// StagePrecondition returns the episode status a stage requires before it may
// run.
func StagePrecondition(stage string) (episode.Status, bool) {
	s, ok := stagePrecondition[stage]
	return s, ok
}

// StageResultStatus returns the status a stage leaves the episode in, or
// ok=false for stages that do not advance the lifecycle (metadata).
func StageResultStatus(stage string) (episode.Status, bool) {
	s, ok := stageResult[stage]
	return s, ok
}

// GatingStages returns the stages that must be completed before the given
// stage runs on a recovered episode.
func GatingStages(stage string) []string {
	return gatingStages[stage]
}

// NextStage returns the stage to dispatch for an episode in the given status,
// following the linear machine: idea→planning, planning→scripting,
// scripting→(script_review pause), script_review→audio, audio→avatar.
// Returns ok=false when no stage applies (terminal, or past broll).
func NextStage(s episode.Status) (string, bool) {
	switch s {
	case episode.StatusIdea:
		return models.StagePlanning, true
	case episode.StatusPlanning:
		return models.StageScripting, true
	case episode.StatusScripting:
		return models.StageMetadata, true
	case episode.StatusScriptReview:
		return models.StageAudio, true
	case episode.StatusAudio:
		return models.StageAvatar, true
	case episode.StatusAvatar:
		return models.StageBroll, true
	default:
		return "", false
	}
}
