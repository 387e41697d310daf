package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus reports basic dataset counts for the admin dashboard.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	embassies, err := h.store.LoadRankedEmbassies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	runs, err := h.store.LoadImportRuns(1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := gin.H{
		"embassies": len(embassies),
		"lastRun":   nil,
	}
	if len(runs) > 0 {
		status["lastRun"] = runs[0]
	}
	c.JSON(http.StatusOK, status)
}
