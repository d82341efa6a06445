package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
)

// TriggerRequest is the body for POST /episodes/:id/trigger.
type TriggerRequest struct {
	Stage  string            `json:"stage" binding:"required"`
	Params models.WorkParams `json:"params"`
	Force  bool              `json:"force"`
}

// RunFromStageRequest is the body for POST /episodes/:id/run_from_stage.
type RunFromStageRequest struct {
	Start string   `json:"start" binding:"required"`
	Skip  []string `json:"skip"`
}

// triggerStage handles POST /api/v1/episodes/:id/trigger: one queued job for
// one content stage.
func (s *Server) triggerStage(c *gin.Context) {
	var req TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	j, err := s.jobs.DispatchStage(c.Request.Context(), c.Param("id"), req.Stage, req.Params, req.Force)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"job_id": j.ID,
		"stage":  j.Stage,
		"status": j.Status,
	})
}

// advanceEpisode handles POST /api/v1/episodes/:id/advance: dispatches the
// next stage after the episode's current status.
func (s *Server) advanceEpisode(c *gin.Context) {
	id := c.Param("id")
	ep, err := s.episodes.GetEpisode(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	stage, ok := services.NextStage(ep.Status)
	if !ok {
		abortWithServiceError(c, services.E(services.KindValidation,
			"episode %s is %s; nothing to advance to", id, ep.Status))
		return
	}

	j, err := s.jobs.DispatchStage(c.Request.Context(), id, stage, models.WorkParams{}, false)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"job_id": j.ID,
		"stage":  j.Stage,
		"status": j.Status,
	})
}

// runStage1 handles POST /api/v1/episodes/:id/run_stage_1: the text-only
// chain ending at script_review.
func (s *Server) runStage1(c *gin.Context) {
	s.dispatchChain(c, models.ChainStage1Pipeline, models.WorkParams{})
}

// runFull handles POST /api/v1/episodes/:id/run_full.
func (s *Server) runFull(c *gin.Context) {
	s.dispatchChain(c, models.ChainFullPipeline, models.WorkParams{})
}

// runFromStage handles POST /api/v1/episodes/:id/run_from_stage.
func (s *Server) runFromStage(c *gin.Context) {
	var req RunFromStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.dispatchChain(c, models.ChainFromStage(req.Start), models.WorkParams{
		Start: req.Start,
		Skip:  req.Skip,
	})
}

func (s *Server) dispatchChain(c *gin.Context, chainStage string, params models.WorkParams) {
	j, err := s.jobs.DispatchChain(c.Request.Context(), c.Param("id"), chainStage, params)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"tracking_job_id": j.ID,
		"stage":           j.Stage,
		"status":          j.Status,
	})
}
