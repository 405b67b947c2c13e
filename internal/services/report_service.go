package services

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fgillet-lagoon/hour-track/internal/log"
	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/fgillet-lagoon/hour-track/internal/report"
	"github.com/fgillet-lagoon/hour-track/internal/repository"
)

var (
	ErrAdminOnly       = errors.New("administrator privileges required")
	ErrUnknownGrouping = errors.New("unknown grouping")
)

// Grouping names accepted by chart and report endpoints.
const (
	GroupProjects = "projects"
	GroupMonths   = "months"
	GroupUsers    = "users"
)

// ReportService wires the visibility scope, the aggregator and the
// renderers to the entry store.
type ReportService struct {
	entryRepo   repository.EntryRepository
	projectRepo repository.ProjectRepository
	palette     report.Palette
	logger      *log.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(
	entryRepo repository.EntryRepository,
	projectRepo repository.ProjectRepository,
	palette report.Palette,
	logger *log.Logger,
) *ReportService {
	return &ReportService{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
		palette:     palette,
		logger:      logger,
	}
}

func (s *ReportService) scopedEntries(requester *models.User, targetUserID *uint64) ([]models.TimeEntry, error) {
	scope := report.VisibleScope(requester, targetUserID)
	entries, err := s.entryRepo.ListForReport(repository.EntryFilter{UserID: scope.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// ProjectReport aggregates visible entries per project.
func (s *ReportService) ProjectReport(requester *models.User, targetUserID *uint64) ([]report.Row, error) {
	entries, err := s.scopedEntries(requester, targetUserID)
	if err != nil {
		return nil, err
	}
	return report.ByProject(entries), nil
}

// MonthReport aggregates visible entries into the twelve months ending
// at ref. Entries without a resolvable period are skipped and logged.
func (s *ReportService) MonthReport(requester *models.User, targetUserID *uint64, ref time.Time) ([]report.Row, error) {
	entries, err := s.scopedEntries(requester, targetUserID)
	if err != nil {
		return nil, err
	}

	rows, skipped := report.ByMonth(entries, ref)
	if skipped > 0 {
		s.logger.Warn("entries without a resolvable period were skipped",
			log.FieldSkipped, skipped,
			log.FieldUserID, requester.ID)
	}
	return rows, nil
}

// UserReport aggregates all entries per user. Admin only.
func (s *ReportService) UserReport(requester *models.User) ([]report.Row, error) {
	if !requester.IsAdmin {
		return nil, ErrAdminOnly
	}

	entries, err := s.scopedEntries(requester, nil)
	if err != nil {
		return nil, err
	}
	return report.ByUser(entries), nil
}

// ChartSeries renders the requested grouping as a chart-ready series.
// Project rows carry their configured display color; month rows use the
// palette by index.
func (s *ReportService) ChartSeries(requester *models.User, grouping string, targetUserID *uint64, ref time.Time) (report.Series, error) {
	switch grouping {
	case GroupProjects:
		rows, err := s.ProjectReport(requester, targetUserID)
		if err != nil {
			return report.Series{}, err
		}

		projects, err := s.projectRepo.List()
		if err != nil {
			return report.Series{}, fmt.Errorf("failed to load projects: %w", err)
		}
		colors := make(map[string]string, len(projects))
		for _, p := range projects {
			colors[p.Name] = p.Color
		}

		return report.BuildSeries(rows, func(label string) string {
			return colors[label]
		}, s.palette), nil

	case GroupMonths:
		rows, err := s.MonthReport(requester, targetUserID, ref)
		if err != nil {
			return report.Series{}, err
		}
		return report.BuildSeries(rows, nil, s.palette), nil

	default:
		return report.Series{}, ErrUnknownGrouping
	}
}

// ExportCSV streams the visible entries as CSV.
func (s *ReportService) ExportCSV(w io.Writer, requester *models.User, targetUserID *uint64) error {
	entries, err := s.scopedEntries(requester, targetUserID)
	if err != nil {
		return err
	}
	return report.WriteCSV(w, entries)
}

// Dashboard returns the requester's per-project totals together with
// their most recent entries.
func (s *ReportService) Dashboard(requester *models.User, recent int) ([]report.Row, []models.TimeEntry, error) {
	entries, err := s.scopedEntries(requester, nil)
	if err != nil {
		return nil, nil, err
	}

	rows := report.ByProject(entries)

	// entries are in creation order; take the newest from the tail.
	if recent > 0 && len(entries) > recent {
		entries = entries[len(entries)-recent:]
	}
	recentEntries := make([]models.TimeEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		recentEntries = append(recentEntries, entries[i])
	}

	return rows, recentEntries, nil
}
