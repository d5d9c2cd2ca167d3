package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
	"github.com/workmemory/worklog-backend/internal/worklog/repository"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create creates a new project. Empty and duplicate names (exact,
// case-sensitive match) fail with domain.ErrValidation.
func (s *ProjectService) Create(ctx context.Context, name string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name required", domain.ErrValidation)
	}
	return s.repo.Create(ctx, name)
}

// GetOrCreate resolves a project by exact name, creating it on first use.
func (s *ProjectService) GetOrCreate(ctx context.Context, name string) (*domain.Project, error) {
	return getOrCreateProject(ctx, s.repo, strings.TrimSpace(name))
}

// List returns all projects, oldest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// Delete removes a project. Deleting a project that still has tasks is
// forbidden and fails with domain.ErrIntegrity.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func getOrCreateProject(ctx context.Context, repo *repository.ProjectRepository, name string) (*domain.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: project name required", domain.ErrValidation)
	}
	project, err := repo.GetByName(ctx, name)
	if err == nil {
		return project, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return repo.Create(ctx, name)
}
