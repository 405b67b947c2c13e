package middleware

import (
	apierrors "github.com/fgillet-lagoon/hour-track/internal/errors"
	"github.com/gin-gonic/gin"
)

// RequireAdmin checks that the authenticated user carries the admin
// flag. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !user.IsAdmin {
			apierrors.Forbidden(c, "Administrator privileges required")
			c.Abort()
			return
		}

		c.Next()
	}
}
