package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/fgillet-lagoon/hour-track/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound = errors.New("time entry not found")
	ErrInvalidHours  = errors.New("hours must be greater than zero")
	ErrInvalidPeriod = errors.New("exactly one of date or month/year must be set")
	ErrNotEntryOwner = errors.New("only the owner can delete this entry")
)

// EntryService provides business logic for time entry operations.
type EntryService struct {
	entryRepo   repository.EntryRepository
	projectRepo repository.ProjectRepository
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo repository.EntryRepository, projectRepo repository.ProjectRepository) *EntryService {
	return &EntryService{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
	}
}

// CreateEntryInput represents the information needed to log time.
// Exactly one of Date or the Month/Year pair identifies the period.
type CreateEntryInput struct {
	UserID    uint64
	ProjectID uint64
	Hours     float64
	Date      *time.Time
	Month     *int
	Year      *int
	Notes     string
}

// CreateEntry validates and records a new time entry.
func (s *EntryService) CreateEntry(input CreateEntryInput) (*models.TimeEntry, error) {
	if input.Hours <= 0 {
		return nil, ErrInvalidHours
	}
	if err := validatePeriod(input.Date, input.Month, input.Year); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	entry := &models.TimeEntry{
		UserID:    input.UserID,
		ProjectID: input.ProjectID,
		Hours:     input.Hours,
		Date:      input.Date,
		Month:     input.Month,
		Year:      input.Year,
		Notes:     input.Notes,
	}

	if err := s.entryRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	created, err := s.entryRepo.FindByID(entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload time entry: %w", err)
	}
	return created, nil
}

// ListEntries returns entries newest first under the given filter.
func (s *EntryService) ListEntries(filter repository.EntryFilter) ([]models.TimeEntry, int64, error) {
	return s.entryRepo.List(filter)
}

// DeleteEntry removes an entry. Non-admins may only delete their own.
func (s *EntryService) DeleteEntry(id uint64, requester *models.User) error {
	entry, err := s.entryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to find time entry: %w", err)
	}

	if !requester.IsAdmin && entry.UserID != requester.ID {
		return ErrNotEntryOwner
	}

	if err := s.entryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	return nil
}

func validatePeriod(date *time.Time, month, year *int) error {
	hasDate := date != nil
	hasMonth := month != nil || year != nil

	if hasDate == hasMonth {
		return ErrInvalidPeriod
	}
	if hasMonth {
		if month == nil || year == nil {
			return ErrInvalidPeriod
		}
		if *month < 1 || *month > 12 || *year < 1 {
			return ErrInvalidPeriod
		}
	}
	return nil
}
