package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "golden-seed.backend/internal/domain/errors"
	"golden-seed.backend/internal/interfaces/http/response"
	"golden-seed.backend/internal/usecases"
)

const (
	defaultFlips = 100_000
	maxFlips     = 1_000_000
)

// StatsHandler handles the public statistics demonstrations
type StatsHandler struct {
	generateUsecase *usecases.GenerateUsecase
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(generateUsecase *usecases.GenerateUsecase) *StatsHandler {
	return &StatsHandler{generateUsecase: generateUsecase}
}

// CoinFlip samples one fair-coin bit per chunk and reports the balance
// GET /api/v1/stats/coinflip?seed=0&flips=100000
func (h *StatsHandler) CoinFlip(c *gin.Context) {
	seed, err := parseQueryInt64(c, "seed", 0)
	if err != nil || seed < 0 {
		response.Error(c, domainerrors.BadRequest("seed must be a non-negative integer"))
		return
	}

	flips, err := parseQueryInt64(c, "flips", defaultFlips)
	if err != nil || flips < 1 || flips > maxFlips {
		response.Error(c, domainerrors.BadRequest("flips must be between 1 and 1000000"))
		return
	}

	resp, err := h.generateUsecase.CoinFlip(c.Request.Context(), seed, flips)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func parseQueryInt64(c *gin.Context, name string, def int64) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
