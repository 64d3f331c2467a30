package middleware

import (
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	appErrors "jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware validates the bearer token and puts the caller's identity on
// the context. The token's user id is the only identity used downstream.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			appErrors.HandleError(c, appErrors.NewUnauthorizedError("Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			appErrors.HandleError(c, appErrors.NewUnauthorizedError("Invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			appErrors.HandleError(c, appErrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(c.GetString(ContextRoleKey))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		appErrors.HandleError(c, appErrors.ErrInsufficientPermissions)
		c.Abort()
	}
}
