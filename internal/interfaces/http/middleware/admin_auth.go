package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"golden-seed.backend/pkg/jwt"
)

const (
	// AdminEmailKey is the context key for the authenticated admin email
	AdminEmailKey = "adminEmail"
	// AdminRoleKey is the context key for the authenticated admin role
	AdminRoleKey = "adminRole"
)

// AdminAuthMiddleware guards the provisioning endpoints with a JWT issued
// by the admin login endpoint.
func AdminAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			return
		}

		c.Set(AdminEmailKey, claims.Email)
		c.Set(AdminRoleKey, claims.Role)

		c.Next()
	}
}

// GetAdminEmail gets the authenticated admin email from context
func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(AdminEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}
