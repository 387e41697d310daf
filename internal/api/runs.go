package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListRuns returns the import audit log, most recent first. The limit only
// windows the response; the log itself is never pruned.
// GET /api/runs?limit=N
func (h *Handler) ListRuns(c *gin.Context) {
	limit := h.cfg.Import.RunsWindow
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	runs, err := h.store.LoadImportRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
}
