package dto

import (
	"time"

	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/fgillet-lagoon/hour-track/internal/utils"
)

// EntryDTO represents a time entry in API responses. Period is the
// formatted period string; the raw date or month/year fields are kept
// for form round-trips.
type EntryDTO struct {
	ID        uint64      `json:"id"`
	UserID    uint64      `json:"user_id"`
	ProjectID uint64      `json:"project_id"`
	Hours     float64     `json:"hours"`
	Period    string      `json:"period"`
	Date      *time.Time  `json:"date,omitempty"`
	Month     *int        `json:"month,omitempty"`
	Year      *int        `json:"year,omitempty"`
	Notes     string      `json:"notes"`
	CreatedAt time.Time   `json:"created_at"`
	User      *UserDTO    `json:"user,omitempty"`
	Project   *ProjectDTO `json:"project,omitempty"`
}

// EntryListResponse represents a paginated list of time entries
type EntryListResponse struct {
	Entries    []EntryDTO               `json:"entries"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToEntryDTO converts a TimeEntry model to EntryDTO
func ToEntryDTO(entry models.TimeEntry) EntryDTO {
	dto := EntryDTO{
		ID:        entry.ID,
		UserID:    entry.UserID,
		ProjectID: entry.ProjectID,
		Hours:     entry.Hours,
		Period:    entry.PeriodString(),
		Date:      entry.Date,
		Month:     entry.Month,
		Year:      entry.Year,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
	}

	// Include relations if preloaded
	if entry.User.ID != 0 {
		user := ToUserDTO(entry.User)
		dto.User = &user
	}
	if entry.Project.ID != 0 {
		project := ToProjectDTO(entry.Project)
		dto.Project = &project
	}

	return dto
}

// ToEntryDTOs converts a slice of time entries
func ToEntryDTOs(entries []models.TimeEntry) []EntryDTO {
	dtos := make([]EntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = ToEntryDTO(entry)
	}
	return dtos
}
