package repository

import (
	"github.com/fgillet-lagoon/hour-track/internal/database"
	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/fgillet-lagoon/hour-track/internal/utils"
	"gorm.io/gorm"
)

// GormEntryRepository is a GORM implementation of EntryRepository
type GormEntryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &GormEntryRepository{db: db}
}

// Create creates a new time entry
func (r *GormEntryRepository) Create(entry *models.TimeEntry) error {
	return r.db.Create(entry).Error
}

// FindByID finds a time entry by ID with its relations
func (r *GormEntryRepository) FindByID(id uint64) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	if err := r.db.Preload("User").Preload("Project").
		First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *GormEntryRepository) filtered(filter EntryFilter) *gorm.DB {
	query := r.db.Model(&models.TimeEntry{})
	if filter.UserID != nil {
		query = query.Where("time_entries.user_id = ?", *filter.UserID)
	}
	if filter.ProjectID != nil {
		query = query.Where("time_entries.project_id = ?", *filter.ProjectID)
	}
	return query
}

// List retrieves entries newest first with filtering and pagination
func (r *GormEntryRepository) List(filter EntryFilter) ([]models.TimeEntry, int64, error) {
	query := r.filtered(filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("time_entries.created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Offset: (filter.Page - 1) * filter.PageSize,
			Limit:  filter.PageSize,
		}))
	}

	var entries []models.TimeEntry
	if err := listQuery.Preload("User").Preload("Project").
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListForReport retrieves every matching entry in creation order with
// relations loaded, ready for aggregation and export
func (r *GormEntryRepository) ListForReport(filter EntryFilter) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	if err := r.filtered(filter).
		Order("time_entries.created_at ASC").
		Preload("User").Preload("Project").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete deletes a time entry
func (r *GormEntryRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TimeEntry{}, id).Error
}
