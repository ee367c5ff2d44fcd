package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"orderdesk/internal/domain"
	jwtsvc "orderdesk/internal/pkg/jwt"
	"orderdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserLoader is the slice of the user repository the auth middleware needs.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth validates the bearer token and re-checks the bound identity on every
// call: a token stays useless once the account is deleted or deactivated,
// even inside its validity window.
func Auth(j *jwtsvc.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := j.ValidateToken(tokenStr)
		if err != nil {
			if errors.Is(err, jwtsvc.ErrTokenExpired) {
				response.Error(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired")
			} else {
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			}
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			} else {
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
			}
			c.Abort()
			return
		}

		if !user.Active {
			response.Error(c, http.StatusUnauthorized, "ACCOUNT_DEACTIVATED", "Account is deactivated")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("handle", user.Handle)
		c.Set("role", string(user.Role))
		c.Set("client_group_id", user.ClientGroupID)

		c.Next()
	}
}
