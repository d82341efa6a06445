// Package api is the thin HTTP command surface over the services layer. It
// creates job rows and reads state; it never blocks on stage execution.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/showforge/showforge/pkg/database"
	"github.com/showforge/showforge/pkg/queue"
	"github.com/showforge/showforge/pkg/services"
	"github.com/showforge/showforge/pkg/version"
)

// Server wires the HTTP handlers to the services layer and the worker pool.
type Server struct {
	db       *database.Client
	channels *services.ChannelService
	episodes *services.EpisodeService
	jobs     *services.JobService
	pool     *queue.WorkerPool
}

// NewServer creates the API server.
func NewServer(db *database.Client, pool *queue.WorkerPool) *Server {
	return &Server{
		db:       db,
		channels: services.NewChannelService(db.Client),
		episodes: services.NewEpisodeService(db.Client),
		jobs:     services.NewJobService(db.Client),
		pool:     pool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/channels", s.createChannel)
		v1.GET("/channels/:id", s.getChannel)
		v1.DELETE("/channels/:id", s.deleteChannel)

		v1.POST("/episodes", s.createEpisode)
		v1.GET("/episodes/:id", s.getEpisode)
		v1.GET("/episodes", s.listEpisodes)
		v1.GET("/episodes/:id/pipeline_status", s.pipelineStatus)
		v1.GET("/episodes/:id/assets", s.listAssets)

		v1.POST("/episodes/:id/trigger", s.triggerStage)
		v1.POST("/episodes/:id/advance", s.advanceEpisode)
		v1.POST("/episodes/:id/run_stage_1", s.runStage1)
		v1.POST("/episodes/:id/run_full", s.runFull)
		v1.POST("/episodes/:id/run_from_stage", s.runFromStage)
		v1.POST("/episodes/:id/approve", s.approveScript)
		v1.POST("/episodes/:id/cancel", s.cancelEpisode)

		v1.GET("/jobs/:id", s.getJob)
		v1.POST("/jobs/:id/cancel", s.cancelJob)
		v1.POST("/jobs/:id/retry", s.retryJob)
	}

	return r
}

// health reports database and worker-pool health.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.db.Health(ctx)

	var poolHealth any
	if s.pool != nil {
		poolHealth = s.pool.Health(ctx)
	}

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
			"database": dbHealth,
			"pool":     poolHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
		"pool":     poolHealth,
	})
}
