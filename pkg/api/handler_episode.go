package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/showforge/showforge/pkg/models"
	"github.com/showforge/showforge/pkg/services"
)

// createEpisode handles POST /api/v1/episodes.
func (s *Server) createEpisode(c *gin.Context) {
	var req models.CreateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ep, err := s.episodes.CreateEpisode(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ep)
}

// getEpisode handles GET /api/v1/episodes/:id.
func (s *Server) getEpisode(c *gin.Context) {
	ep, err := s.episodes.GetEpisode(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ep)
}

// listEpisodes handles GET /api/v1/episodes?channel_id=...&limit=N.
func (s *Server) listEpisodes(c *gin.Context) {
	channelID := c.Query("channel_id")
	if channelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channel_id is required"})
		return
	}
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	eps, err := s.episodes.ListEpisodes(c.Request.Context(), channelID, limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"episodes": eps, "count": len(eps)})
}

// pipelineStatus handles GET /api/v1/episodes/:id/pipeline_status.
func (s *Server) pipelineStatus(c *gin.Context) {
	report, err := s.episodes.PipelineStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// listAssets handles GET /api/v1/episodes/:id/assets.
func (s *Server) listAssets(c *gin.Context) {
	assets, err := services.NewAssetService(s.db.Client).ListByEpisode(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets, "count": len(assets)})
}

// cancelEpisode handles POST /api/v1/episodes/:id/cancel. Marks the episode
// and its active jobs cancelled, then signals any in-flight worker on this
// pod so the running stage stops at its next checkpoint.
func (s *Server) cancelEpisode(c *gin.Context) {
	id := c.Param("id")
	count, err := s.episodes.CancelEpisode(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	signalled := false
	if s.pool != nil {
		signalled = s.pool.CancelEpisode(id)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              "cancelled",
		"cancelled_job_count": count,
		"worker_signalled":    signalled,
	})
}

// approveScript handles POST /api/v1/episodes/:id/approve. Completing the
// script_review gate dispatches the audio stage; avatar and b-roll follow via
// advance or a resumed pipeline.
func (s *Server) approveScript(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.episodes.ApproveScript(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}

	j, err := s.jobs.DispatchStage(c.Request.Context(), id, models.StageAudio, models.WorkParams{}, false)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "approved",
		"job_id": j.ID,
		"stage":  j.Stage,
	})
}
