package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultProjectColor is assigned when a project is created without
// an explicit display color.
const DefaultProjectColor = "#2563EB"

type Project struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Color       string         `gorm:"type:varchar(7);not null;default:'#2563EB'" json:"color"`
	CreatedByID uint64         `gorm:"not null" json:"created_by_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedBy   User        `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	TimeEntries []TimeEntry `gorm:"foreignKey:ProjectID" json:"-"`
}
