package middleware

import (
	"strconv"

	"github.com/fgillet-lagoon/hour-track/internal/constants"
	"github.com/fgillet-lagoon/hour-track/internal/database"
	apierrors "github.com/fgillet-lagoon/hour-track/internal/errors"
	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireEntryAccess checks that the user may act on a time entry:
// the owner always may, admins may act on any entry.
func RequireEntryAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		entryIDStr := c.Param("id")
		entryID, err := strconv.ParseUint(entryIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid entry ID")
			c.Abort()
			return
		}

		user, ok := CurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var entry models.TimeEntry
		if err := database.GetDB().
			Preload("User").
			Preload("Project").
			First(&entry, entryID).Error; err != nil {
			apierrors.NotFound(c, "Time entry not found")
			c.Abort()
			return
		}

		// Return 404 instead of 403 to avoid leaking other users' entries
		if !user.IsAdmin && entry.UserID != user.ID {
			apierrors.NotFound(c, "Time entry not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyEntry, entry)
		c.Next()
	}
}
