package middleware

import (
	"net/http"

	"orderdesk/internal/domain"
	"orderdesk/internal/pkg/policy"
	"orderdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequirePermission gates a route on the policy table. Must run after Auth.
func RequirePermission(op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !policy.Allowed(domain.UserRole(role.(string)), op) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
