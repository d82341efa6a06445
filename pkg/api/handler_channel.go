package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/showforge/showforge/pkg/models"
)

// createChannel handles POST /api/v1/channels.
func (s *Server) createChannel(c *gin.Context) {
	var req models.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ch, err := s.channels.CreateChannel(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ch)
}

// getChannel handles GET /api/v1/channels/:id. A "slug:" prefix looks the
// channel up by slug instead of id.
func (s *Server) getChannel(c *gin.Context) {
	id := c.Param("id")

	var err error
	var ch any
	if slug, ok := strings.CutPrefix(id, "slug:"); ok {
		ch, err = s.channels.GetChannelBySlug(c.Request.Context(), slug)
	} else {
		ch, err = s.channels.GetChannel(c.Request.Context(), id)
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// deleteChannel handles DELETE /api/v1/channels/:id. Channels with live
// episodes are refused unless ?cascade=true.
func (s *Server) deleteChannel(c *gin.Context) {
	cascade := c.Query("cascade") == "true"
	if err := s.channels.DeleteChannel(c.Request.Context(), c.Param("id"), cascade); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
