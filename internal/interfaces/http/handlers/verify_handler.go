package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golden-seed.backend/internal/interfaces/http/response"
	"golden-seed.backend/internal/usecases"
)

// VerifyHandler handles hash verification lookups
type VerifyHandler struct {
	generateUsecase *usecases.GenerateUsecase
}

// NewVerifyHandler creates a new verify handler
func NewVerifyHandler(generateUsecase *usecases.GenerateUsecase) *VerifyHandler {
	return &VerifyHandler{generateUsecase: generateUsecase}
}

// Verify answers whether a hash prefix matches a recorded generation.
// The answer always travels in the body; a miss is not an HTTP error.
// GET /api/v1/verify/:hash_prefix
func (h *VerifyHandler) Verify(c *gin.Context) {
	resp := h.generateUsecase.Verify(c.Request.Context(), c.Param("hash_prefix"))
	response.Success(c, http.StatusOK, resp)
}
