package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sivportal/internal/importer"
	"sivportal/internal/model"
)

// ListEmbassies returns the cumulative dataset in rank order.
// GET /api/embassies
func (h *Handler) ListEmbassies(c *gin.Context) {
	ranked, err := h.store.LoadRankedEmbassies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"embassies": ranked, "count": len(ranked)})
}

// GetEmbassy returns one cumulative entity.
// GET /api/embassies/:identifier
func (h *Handler) GetEmbassy(c *gin.Context) {
	identifier := c.Param("identifier")

	embassies, err := h.store.LoadEmbassies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	embassy, ok := embassies[identifier]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown embassy"})
		return
	}
	c.JSON(http.StatusOK, embassy)
}

// UpdateEmbassyRequest carries the editable descriptive fields. Period
// values, totals and ranks are owned by the reconciler and cannot be set
// here.
type UpdateEmbassyRequest struct {
	Region *string `json:"region"`
}

// UpdateEmbassy edits descriptive fields of one entity and rewrites the
// store in full, re-ranking in the process. The sibling visa/travel entries
// for the identifier are refreshed with the edit timestamp, per the host
// application's save contract.
// PATCH /api/embassies/:identifier
func (h *Handler) UpdateEmbassy(c *gin.Context) {
	identifier := c.Param("identifier")

	var req UpdateEmbassyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	embassies, err := h.store.LoadEmbassies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	embassy, ok := embassies[identifier]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown embassy"})
		return
	}

	if req.Region != nil {
		embassy.Region = *req.Region
	}
	embassy.LastUpdated = time.Now()

	if err := h.store.SaveEmbassies(importer.RankedSlice(embassies)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.touchRequirements(identifier, embassy.LastUpdated)

	c.JSON(http.StatusOK, embassy)
}

// touchRequirements refreshes the sibling visa/travel entries for an
// identifier, creating empty ones on first edit. A failed refresh does not
// fail the edit itself.
func (h *Handler) touchRequirements(identifier string, at time.Time) {
	if visa, err := h.store.LoadVisaRequirements(); err == nil {
		entry, ok := visa[identifier]
		if !ok {
			entry = &model.VisaRequirement{Identifier: identifier}
			visa[identifier] = entry
		}
		entry.LastUpdated = at
		_ = h.store.SaveVisaRequirements(visa)
	}

	if travel, err := h.store.LoadTravelRequirements(); err == nil {
		entry, ok := travel[identifier]
		if !ok {
			entry = &model.TravelRequirement{Identifier: identifier}
			travel[identifier] = entry
		}
		entry.LastUpdated = at
		_ = h.store.SaveTravelRequirements(travel)
	}
}
