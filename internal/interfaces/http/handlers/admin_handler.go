package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"golden-seed.backend/internal/domain/entities"
	domainerrors "golden-seed.backend/internal/domain/errors"
	"golden-seed.backend/internal/interfaces/http/response"
	"golden-seed.backend/internal/usecases"
	"golden-seed.backend/pkg/crypto"
	"golden-seed.backend/pkg/jwt"
)

const defaultUsageLimit = 50

// AdminLoginInput is the admin login request body
type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminHandler handles operator provisioning endpoints
type AdminHandler struct {
	provisionUsecase *usecases.ProvisionUsecase
	usageUsecase     *usecases.UsageUsecase
	jwtService       *jwt.Service
	adminEmail       string
	adminPassHash    string
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(provisionUsecase *usecases.ProvisionUsecase, usageUsecase *usecases.UsageUsecase, jwtService *jwt.Service, adminEmail, adminPassHash string) *AdminHandler {
	return &AdminHandler{
		provisionUsecase: provisionUsecase,
		usageUsecase:     usageUsecase,
		jwtService:       jwtService,
		adminEmail:       adminEmail,
		adminPassHash:    adminPassHash,
	}
}

// Login exchanges the operator credentials for a JWT
// POST /api/v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if h.adminEmail == "" || h.adminPassHash == "" {
		response.Error(c, domainerrors.Forbidden("Admin access is not configured"))
		return
	}

	if input.Email != h.adminEmail || !crypto.CheckPassword(input.Password, h.adminPassHash) {
		response.Error(c, domainerrors.Unauthorized("Invalid email or password"))
		return
	}

	token, err := h.jwtService.GenerateToken(input.Email, "admin")
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"email": input.Email,
	})
}

// CreateUser registers a new user account
// POST /api/v1/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.provisionUsecase.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// CreateSubscription activates a subscription tier for a user
// POST /api/v1/admin/subscriptions
func (h *AdminHandler) CreateSubscription(c *gin.Context) {
	var input entities.CreateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sub, err := h.provisionUsecase.CreateSubscription(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"subscription": sub})
}

// CreateApiKey mints an API key for a user. The raw key appears in this
// response only; the store keeps its digest.
// POST /api/v1/admin/api-keys
func (h *AdminHandler) CreateApiKey(c *gin.Context) {
	var input entities.CreateApiKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	key, err := h.provisionUsecase.CreateApiKey(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, key)
}

// GetUsage lists a user's most recent usage entries
// GET /api/v1/admin/users/:user_id/usage
func (h *AdminHandler) GetUsage(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	limit := defaultUsageLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 1000 {
			response.Error(c, domainerrors.BadRequest("limit must be between 1 and 1000"))
			return
		}
	}

	logs, err := h.usageUsecase.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"usage": logs,
		"count": len(logs),
	})
}
