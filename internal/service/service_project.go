package service

import (
	"context"
	"fmt"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/store"
	"github.com/mnpat/go-portfolio/internal/validators"
	"github.com/mnpat/go-portfolio/models"
)

// projectService is the concrete implementation of [ProjectService].
// Listing and reading projects is public; mutations are for admins.
type projectService struct {
	projectRepository store.ProjectRepository
	validator         *validators.RequestValidator
	logger            *logger.Logger
}

// NewProjectService constructs a [ProjectService] wired to the given
// repository.
func NewProjectService(projectRepository store.ProjectRepository, validator *validators.RequestValidator, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (s *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.ValidateStruct(project); err != nil {
		log.Error().Err(err).Msg("invalid project data provided")
		return models.Project{}, err
	}

	created, err := s.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return created, nil
}

func (s *projectService) GetProject(ctx context.Context, id int64) (models.Project, error) {
	project, err := s.projectRepository.FindProjectByID(ctx, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("project search by id failed: %w", err)
	}

	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepository.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects failed: %w", err)
	}

	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (models.Project, error) {
	project, err := s.projectRepository.UpdateProject(ctx, id, update)
	if err != nil {
		return models.Project{}, fmt.Errorf("project update failed: %w", err)
	}

	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projectRepository.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("project deletion failed: %w", err)
	}

	return nil
}

func (s *projectService) DeleteAllProjects(ctx context.Context) (int64, error) {
	count, err := s.projectRepository.DeleteAllProjects(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting all projects failed: %w", err)
	}

	return count, nil
}
