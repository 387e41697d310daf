package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sivportal/internal/model"
)

// GetVisaRequirement returns the visa table entry for one post.
// GET /api/requirements/visa/:identifier
func (h *Handler) GetVisaRequirement(c *gin.Context) {
	identifier := c.Param("identifier")

	visa, err := h.store.LoadVisaRequirements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entry, ok := visa[identifier]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no visa requirements recorded"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// PutVisaRequirement replaces the visa table entry for one post.
// PUT /api/requirements/visa/:identifier
func (h *Handler) PutVisaRequirement(c *gin.Context) {
	identifier := c.Param("identifier")

	var entry model.VisaRequirement
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	entry.Identifier = identifier
	entry.LastUpdated = time.Now()

	visa, err := h.store.LoadVisaRequirements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	visa[identifier] = &entry

	if err := h.store.SaveVisaRequirements(visa); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, &entry)
}

// GetTravelRequirement returns the travel table entry for one post.
// GET /api/requirements/travel/:identifier
func (h *Handler) GetTravelRequirement(c *gin.Context) {
	identifier := c.Param("identifier")

	travel, err := h.store.LoadTravelRequirements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entry, ok := travel[identifier]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no travel requirements recorded"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// PutTravelRequirement replaces the travel table entry for one post.
// PUT /api/requirements/travel/:identifier
func (h *Handler) PutTravelRequirement(c *gin.Context) {
	identifier := c.Param("identifier")

	var entry model.TravelRequirement
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	entry.Identifier = identifier
	entry.LastUpdated = time.Now()

	travel, err := h.store.LoadTravelRequirements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	travel[identifier] = &entry

	if err := h.store.SaveTravelRequirements(travel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, &entry)
}
