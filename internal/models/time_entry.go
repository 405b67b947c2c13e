package models

import (
	"time"

	"gorm.io/gorm"
)

// TimeEntry records hours a user attributes to a project for a period.
// The period is exactly one of a calendar date or a (month, year) pair.
type TimeEntry struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	UserID    uint64         `gorm:"not null;index" json:"user_id"`
	ProjectID uint64         `gorm:"not null;index" json:"project_id"`
	Hours     float64        `gorm:"not null;check:hours >= 0" json:"hours"`
	Date      *time.Time     `gorm:"type:date" json:"date,omitempty"`
	Month     *int           `json:"month,omitempty"`
	Year      *int           `json:"year,omitempty"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

// PeriodMonth resolves the calendar month the entry belongs to, as the
// first day of that month in UTC. ok is false when the entry carries
// neither a date nor a complete month/year pair.
func (e *TimeEntry) PeriodMonth() (time.Time, bool) {
	if e.Month != nil && e.Year != nil && *e.Month >= 1 && *e.Month <= 12 {
		return time.Date(*e.Year, time.Month(*e.Month), 1, 0, 0, 0, 0, time.UTC), true
	}
	if e.Date != nil {
		return time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// PeriodString formats the entry period for display and export:
// YYYY-MM-DD for date periods, YYYY-MM for month periods.
func (e *TimeEntry) PeriodString() string {
	if e.Month != nil && e.Year != nil && *e.Month >= 1 && *e.Month <= 12 {
		return time.Date(*e.Year, time.Month(*e.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	}
	if e.Date != nil {
		return e.Date.Format("2006-01-02")
	}
	return ""
}
