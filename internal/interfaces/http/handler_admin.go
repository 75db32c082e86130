package http

import (
	"net/http"

	"project_travelSafe/internal/infrastructure"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	stats *infrastructure.Stats
}

func NewAdminHandler(stats *infrastructure.Stats) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// GetStats returns the in-memory turn counters.
func (h *AdminHandler) GetStats(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Stats not configured"})
		return
	}
	c.JSON(http.StatusOK, h.stats.Snapshot())
}
