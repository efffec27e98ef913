package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"golden-seed.backend/internal/domain/entities"
	domainerrors "golden-seed.backend/internal/domain/errors"
	"golden-seed.backend/internal/interfaces/http/middleware"
	"golden-seed.backend/internal/interfaces/http/response"
	"golden-seed.backend/internal/usecases"
)

// GenerateHandler handles the metered generation endpoints
type GenerateHandler struct {
	generateUsecase *usecases.GenerateUsecase
	authUsecase     *usecases.AuthUsecase
	usageUsecase    *usecases.UsageUsecase
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(generateUsecase *usecases.GenerateUsecase, authUsecase *usecases.AuthUsecase, usageUsecase *usecases.UsageUsecase) *GenerateHandler {
	return &GenerateHandler{
		generateUsecase: generateUsecase,
		authUsecase:     authUsecase,
		usageUsecase:    usageUsecase,
	}
}

// Generate produces deterministic chunks for a single seed
// POST /api/v1/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	start := time.Now()

	var req entities.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("API key not resolved"))
		return
	}

	resp, err := h.generateUsecase.Generate(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.usageUsecase.LogUsage(c.Request.Context(),
		principal.UserID, principal.ApiKeyID, "/api/v1/generate",
		int64(resp.ChunksGenerated), time.Since(start).Milliseconds(), http.StatusOK)

	response.Success(c, http.StatusOK, resp)
}

// BatchGenerate produces chunks for up to 10 seeds in one call. Rate and
// quota limits are re-checked before every contained generation, so a
// batch can be cut off mid-way by a 429.
// POST /api/v1/batch
func (h *GenerateHandler) BatchGenerate(c *gin.Context) {
	var req entities.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("API key not resolved"))
		return
	}

	chunksPerSeed := req.ChunkCount()
	results := make([]entities.GenerateResponse, 0, len(req.Seeds))

	for _, seed := range req.Seeds {
		start := time.Now()

		if err := h.authUsecase.CheckLimits(c.Request.Context(), principal); err != nil {
			response.Error(c, err)
			return
		}

		genReq := &entities.GenerateRequest{
			Seed:   seed,
			Chunks: &chunksPerSeed,
			Format: entities.FormatHex,
		}
		resp, err := h.generateUsecase.Generate(c.Request.Context(), genReq)
		if err != nil {
			response.Error(c, err)
			return
		}

		h.usageUsecase.LogUsage(c.Request.Context(),
			principal.UserID, principal.ApiKeyID, "/api/v1/batch",
			int64(resp.ChunksGenerated), time.Since(start).Milliseconds(), http.StatusOK)

		results = append(results, *resp)
	}

	response.Success(c, http.StatusOK, &entities.BatchResponse{Results: results})
}
