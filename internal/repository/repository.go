package repository

import (
	"github.com/fgillet-lagoon/hour-track/internal/models"
)

// EntryFilter holds filtering options for listing time entries.
// A nil UserID means no owner restriction (admin-wide queries).
type EntryFilter struct {
	UserID    *uint64
	ProjectID *uint64
	Page      int
	PageSize  int
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List returns all users ordered by username
	List() ([]models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// Delete deletes a user and all of their time entries
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// FindByName finds a project by its unique name
	FindByName(name string) (*models.Project, error)

	// List returns all projects ordered by name
	List() ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project and all of its time entries
	Delete(id uint64) error
}

// EntryRepository defines the interface for time entry data access
type EntryRepository interface {
	// Create creates a new time entry
	Create(entry *models.TimeEntry) error

	// FindByID finds a time entry by ID with its relations
	FindByID(id uint64) (*models.TimeEntry, error)

	// List retrieves entries newest first with filtering and pagination
	List(filter EntryFilter) ([]models.TimeEntry, int64, error)

	// ListForReport retrieves every entry matching the filter in creation
	// order, with User and Project relations loaded for aggregation and
	// export
	ListForReport(filter EntryFilter) ([]models.TimeEntry, error)

	// Delete deletes a time entry
	Delete(id uint64) error
}
