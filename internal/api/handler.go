package api

import (
	"github.com/gin-gonic/gin"

	"sivportal/internal/config"
	"sivportal/internal/store"
)

// Handler wires the admin API endpoints.
type Handler struct {
	store *store.Store
	cfg   *config.AppConfig
}

// NewHandler creates the API handler.
func NewHandler(st *store.Store, cfg *config.AppConfig) *Handler {
	return &Handler{store: st, cfg: cfg}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// System status
	router.GET("/status", h.GetStatus)

	// Data import
	router.POST("/import", h.Import)
	router.POST("/import/preview", h.Preview)

	// Cumulative embassy statistics
	router.GET("/embassies", h.ListEmbassies)
	router.GET("/embassies/:identifier", h.GetEmbassy)
	router.PATCH("/embassies/:identifier", h.UpdateEmbassy)

	// Visa/travel requirement tables
	router.GET("/requirements/visa/:identifier", h.GetVisaRequirement)
	router.PUT("/requirements/visa/:identifier", h.PutVisaRequirement)
	router.GET("/requirements/travel/:identifier", h.GetTravelRequirement)
	router.PUT("/requirements/travel/:identifier", h.PutTravelRequirement)

	// Import audit log
	router.GET("/runs", h.ListRuns)
}
