package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/fgillet-lagoon/hour-track/internal/report"
	"github.com/fgillet-lagoon/hour-track/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectNameRequired = errors.New("project name is required")
	ErrProjectNameTaken    = errors.New("a project with this name already exists")
	ErrInvalidColor        = errors.New("color is not part of the palette")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	palette     report.Palette
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, palette report.Palette) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		palette:     palette,
	}
}

// ListProjects returns all projects ordered by name.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.projectRepo.List()
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	Color       string
	CreatorID   uint64
}

// CreateProject creates a new project. An empty color falls back to the
// default; a non-empty color must belong to the palette.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}

	color, err := s.resolveColor(input.Color)
	if err != nil {
		return nil, err
	}

	if err := s.checkNameAvailable(name, 0); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Color:       color,
		CreatedByID: input.CreatorID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProjectInput carries the editable project fields.
type UpdateProjectInput struct {
	Name        string
	Description string
	Color       string
}

// UpdateProject edits an existing project.
func (s *ProjectService) UpdateProject(id uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}
	if err := s.checkNameAvailable(name, project.ID); err != nil {
		return nil, err
	}

	color, err := s.resolveColor(input.Color)
	if err != nil {
		return nil, err
	}

	project.Name = name
	project.Description = strings.TrimSpace(input.Description)
	project.Color = color

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project and all entries logged against it.
func (s *ProjectService) DeleteProject(id uint64) error {
	if _, err := s.GetProject(id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

func (s *ProjectService) resolveColor(color string) (string, error) {
	if color == "" {
		return models.DefaultProjectColor, nil
	}
	if !s.palette.Contains(color) {
		return "", ErrInvalidColor
	}
	return color, nil
}

func (s *ProjectService) checkNameAvailable(name string, selfID uint64) error {
	existing, err := s.projectRepo.FindByName(name)
	if err == nil {
		if existing.ID != selfID {
			return ErrProjectNameTaken
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check project name: %w", err)
	}
	return nil
}
