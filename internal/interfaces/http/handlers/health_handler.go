package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"golden-seed.backend/internal/config"
	"golden-seed.backend/internal/usecases"
)

// Version is the API version reported by the health and root endpoints.
const Version = "1.0.0"

// HealthHandler handles liveness and service-info endpoints
type HealthHandler struct {
	generateUsecase *usecases.GenerateUsecase
	storePing       func(ctx context.Context) bool // nil when no store configured
	mode            config.Mode
}

// NewHealthHandler creates a new health handler. storePing may be nil.
func NewHealthHandler(generateUsecase *usecases.GenerateUsecase, storePing func(ctx context.Context) bool, mode config.Mode) *HealthHandler {
	return &HealthHandler{
		generateUsecase: generateUsecase,
		storePing:       storePing,
		mode:            mode,
	}
}

// Root describes the service
// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "GoldenSeed API",
		"version": Version,
		"status":  "operational",
		"docs":    "https://goldenseed.io/docs",
	})
}

// Health reports component availability. The endpoint itself always
// answers 200; degraded components show up in the body.
// GET /api/v1/health
func (h *HealthHandler) Health(c *gin.Context) {
	storeAvailable := false
	if h.storePing != nil {
		storeAvailable = h.storePing(c.Request.Context())
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"generator_available": h.generateUsecase.Available(),
		"store_available":     storeAvailable,
		"mode":                string(h.mode),
		"version":             Version,
	})
}
