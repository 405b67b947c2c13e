package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fgillet-lagoon/hour-track/internal/constants"
	"github.com/fgillet-lagoon/hour-track/internal/dto"
	apierrors "github.com/fgillet-lagoon/hour-track/internal/errors"
	"github.com/fgillet-lagoon/hour-track/internal/middleware"
	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/fgillet-lagoon/hour-track/internal/report"
	"github.com/fgillet-lagoon/hour-track/internal/repository"
	"github.com/fgillet-lagoon/hour-track/internal/services"
	"github.com/fgillet-lagoon/hour-track/internal/utils"
	"github.com/gin-gonic/gin"
)

// EntryHandler exposes the time entry endpoints.
type EntryHandler struct {
	entryService *services.EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryService *services.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// ListEntries returns entries visible to the requester, newest first.
// Admins may target another user via ?user_id; non-admin targets are
// silently scoped back to the requester.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	scope := report.VisibleScope(user, targetUserID(c))
	params := utils.GetPaginationParams(c)

	filter := repository.EntryFilter{
		UserID:   scope.UserID,
		Page:     params.Page,
		PageSize: params.Limit,
	}
	if projectIDStr := c.Query("project_id"); projectIDStr != "" {
		projectID, err := strconv.ParseUint(projectIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project_id")
			return
		}
		filter.ProjectID = &projectID
	}

	entries, total, err := h.entryService.ListEntries(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch entries")
		return
	}

	c.JSON(http.StatusOK, dto.EntryListResponse{
		Entries: dto.ToEntryDTOs(entries),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// CreateEntry logs hours against a project for the authenticated user.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateEntryRequest struct {
		ProjectID uint64  `json:"project_id" binding:"required"`
		Hours     float64 `json:"hours" binding:"required"`
		Date      string  `json:"date"`
		Month     *int    `json:"month"`
		Year      *int    `json:"year"`
		Notes     string  `json:"notes"`
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	entry, err := h.entryService.CreateEntry(services.CreateEntryInput{
		UserID:    userID,
		ProjectID: req.ProjectID,
		Hours:     req.Hours,
		Date:      date,
		Month:     req.Month,
		Year:      req.Year,
		Notes:     req.Notes,
	})
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryDTO(*entry))
}

// DeleteEntry removes a time entry. The entry in context was loaded and
// authorized by RequireEntryAccess.
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	entryInterface, exists := c.Get(constants.ContextKeyEntry)
	if !exists {
		apierrors.InternalError(c, "Entry not found in context")
		return
	}

	entry, ok2 := entryInterface.(models.TimeEntry)
	if !ok2 {
		apierrors.InternalError(c, "Invalid entry data")
		return
	}

	if err := h.entryService.DeleteEntry(entry.ID, user); err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Time entry deleted successfully",
	})
}

func respondEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidHours),
		errors.Is(err, services.ErrInvalidPeriod):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrEntryNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotEntryOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

// targetUserID parses the optional ?user_id query parameter. Scope
// enforcement happens in report.VisibleScope, not here.
func targetUserID(c *gin.Context) *uint64 {
	raw := c.Query("user_id")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
