package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fgillet-lagoon/hour-track/internal/dto"
	apierrors "github.com/fgillet-lagoon/hour-track/internal/errors"
	"github.com/fgillet-lagoon/hour-track/internal/middleware"
	"github.com/fgillet-lagoon/hour-track/internal/services"
	"github.com/gin-gonic/gin"
)

// recentEntryCount limits the dashboard's recent-entries list.
const recentEntryCount = 10

// ReportHandler exposes the aggregated reporting endpoints.
type ReportHandler struct {
	reportService *services.ReportService
	now           func() time.Time
}

// NewReportHandler creates a new ReportHandler. now injects the
// reference time for the rolling month window; pass time.Now in
// production.
func NewReportHandler(reportService *services.ReportService, now func() time.Time) *ReportHandler {
	if now == nil {
		now = time.Now
	}
	return &ReportHandler{
		reportService: reportService,
		now:           now,
	}
}

// ProjectReport returns per-project totals for the visible entries.
func (h *ReportHandler) ProjectReport(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	rows, err := h.reportService.ProjectReport(user, targetUserID(c))
	if err != nil {
		apierrors.InternalError(c, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(rows))
}

// MonthReport returns totals for the twelve most recent months.
func (h *ReportHandler) MonthReport(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	rows, err := h.reportService.MonthReport(user, targetUserID(c), h.now())
	if err != nil {
		apierrors.InternalError(c, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(rows))
}

// UserReport returns per-user totals across all entries. Admin only.
func (h *ReportHandler) UserReport(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	rows, err := h.reportService.UserReport(user)
	if err != nil {
		if errors.Is(err, services.ErrAdminOnly) {
			apierrors.Forbidden(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(rows))
}

// Chart renders a grouping as a chart-ready series of labels, values
// and colors. ?group selects the grouping, defaulting to projects.
func (h *ReportHandler) Chart(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	grouping := c.DefaultQuery("group", services.GroupProjects)

	series, err := h.reportService.ChartSeries(user, grouping, targetUserID(c), h.now())
	if err != nil {
		if errors.Is(err, services.ErrUnknownGrouping) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to build chart")
		return
	}

	c.JSON(http.StatusOK, series)
}

// Export streams the visible entries as a CSV attachment.
func (h *ReportHandler) Export(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	filename := fmt.Sprintf("time-entries-%s.csv", h.now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.reportService.ExportCSV(c.Writer, user, targetUserID(c)); err != nil {
		// Headers may already be out; nothing useful left to send.
		c.Status(http.StatusInternalServerError)
		return
	}
}

// Dashboard returns the requester's per-project totals and their most
// recent entries.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	rows, recent, err := h.reportService.Dashboard(user, recentEntryCount)
	if err != nil {
		apierrors.InternalError(c, "Failed to build dashboard")
		return
	}

	response := dto.ToReportResponse(rows)
	c.JSON(http.StatusOK, dto.DashboardResponse{
		ProjectTotals: response.Rows,
		RecentEntries: dto.ToEntryDTOs(recent),
	})
}
