package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
	"github.com/workmemory/worklog-backend/internal/worklog/repository"
)

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo    *repository.TaskRepository
	noteRepo    *repository.NoteRepository
	projectRepo *repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo *repository.TaskRepository,
	noteRepo *repository.NoteRepository,
	projectRepo *repository.ProjectRepository,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		noteRepo:    noteRepo,
		projectRepo: projectRepo,
	}
}

// Create creates a new task. Title is required; omitted status and priority
// default to active/medium; unknown enum values are rejected.
func (s *TaskService) Create(ctx context.Context, req *domain.CreateTaskRequest) (*domain.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title required", domain.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, priority)
	}

	task := &domain.Task{
		Title:      title,
		Context:    req.Context,
		NextAction: req.NextAction,
		Status:     status,
		Priority:   priority,
		ProjectID:  req.ProjectID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Capture is the quick-capture flow: resolve the project by name (creating it
// on first use), create the task, and preserve the raw pasted context as an
// initial snapshot note so it survives later edits to the task itself.
func (s *TaskService) Capture(ctx context.Context, req *domain.CaptureRequest) (*domain.Task, error) {
	var projectID *int64
	if name := strings.TrimSpace(req.ProjectName); name != "" {
		project, err := getOrCreateProject(ctx, s.projectRepo, name)
		if err != nil {
			return nil, err
		}
		projectID = &project.ID
	}

	task, err := s.Create(ctx, &domain.CreateTaskRequest{
		Title:      req.Title,
		Context:    req.Context,
		NextAction: req.NextAction,
		ProjectID:  projectID,
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Context) != "" {
		note := &domain.Note{
			TaskID:   task.ID,
			NoteType: domain.NoteTypeSnapshot,
			Body:     req.Context,
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			return nil, err
		}
	}

	return task, nil
}

// Get retrieves a task by id
func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

// List returns tasks matching the filter, most recently updated first. An
// unknown status in the filter is rejected rather than silently matching
// nothing.
func (s *TaskService) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	if filter.Status != "" && !domain.ValidStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	return s.taskRepo.List(ctx, filter)
}

// Update applies a partial update: only fields present in the request change.
// Enum values are validated here so nothing reaches storage on bad input.
func (s *TaskService) Update(ctx context.Context, id int64, req domain.UpdateTaskRequest) (*domain.Task, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
	}
	if req.Status != nil && !domain.ValidStatus(*req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *req.Status)
	}
	if req.Priority != nil && !domain.ValidPriority(*req.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, *req.Priority)
	}
	return s.taskRepo.Update(ctx, id, req)
}

// Delete removes a task and all of its notes in one atomic cascade. The
// second delete of the same id fails with domain.ErrNotFound.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.taskRepo.Delete(ctx, id)
}
