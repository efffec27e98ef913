package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"golden-seed.backend/internal/domain/entities"
	"golden-seed.backend/internal/interfaces/http/response"
	"golden-seed.backend/internal/usecases"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// PrincipalKey is the context key for the resolved caller
	PrincipalKey = "principal"
)

// APIKeyAuthMiddleware admits or rejects a request based on its API key.
// The checks run in a fixed order and the first failure wins: missing
// header, malformed scheme, unknown or inactive key, rate limit, monthly
// quota. On success the resolved principal is stored in the context.
func APIKeyAuthMiddleware(auth *usecases.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing API key. Get one at https://goldenseed.io",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid auth format. Use: Bearer gs_your_key",
			})
			return
		}

		rawKey := strings.TrimPrefix(authHeader, BearerPrefix)
		principal, err := auth.Authorize(c.Request.Context(), rawKey)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// GetPrincipal gets the resolved principal from context
func GetPrincipal(c *gin.Context) (*entities.Principal, bool) {
	v, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	principal, ok := v.(*entities.Principal)
	return principal, ok
}
