package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getJob handles GET /api/v1/jobs/:id.
func (s *Server) getJob(c *gin.Context) {
	j, err := s.jobs.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// cancelJob handles POST /api/v1/jobs/:id/cancel. The row is marked
// cancelled; any worker on this pod running it is signalled too.
func (s *Server) cancelJob(c *gin.Context) {
	j, err := s.jobs.CancelJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	signalled := false
	if s.pool != nil {
		signalled = s.pool.CancelEpisode(j.EpisodeID)
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id":           j.ID,
		"status":           j.Status,
		"worker_signalled": signalled,
	})
}

// retryJob handles POST /api/v1/jobs/:id/retry. The failed row becomes queued
// again and a worker will re-claim it.
func (s *Server) retryJob(c *gin.Context) {
	j, err := s.jobs.RetryJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"job_id":      j.ID,
		"status":      j.Status,
		"retry_count": j.RetryCount,
	})
}
