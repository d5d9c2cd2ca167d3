package service

import (
	"context"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
	"github.com/workmemory/worklog-backend/internal/worklog/repository"
)

// resumeNoteWindow caps how many recent notes ride along with the resume
// task.
const resumeNoteWindow = 5

// ResumeService answers "which task do I pick back up?". It only ever reads;
// calling it twice with no writes in between yields the same answer.
type ResumeService struct {
	taskRepo *repository.TaskRepository
	noteRepo *repository.NoteRepository
}

// NewResumeService creates a new ResumeService
func NewResumeService(taskRepo *repository.TaskRepository, noteRepo *repository.NoteRepository) *ResumeService {
	return &ResumeService{taskRepo: taskRepo, noteRepo: noteRepo}
}

// SelectResumeTask picks the single task to resume: active status, greatest
// updated_at, ties broken deterministically by greatest id. (nil, nil) means
// nothing is active — that is an answer, not an error.
func (s *ResumeService) SelectResumeTask(ctx context.Context) (*domain.Task, error) {
	return s.taskRepo.SelectResume(ctx)
}

// Resume returns the resume task together with its latest notes, newest
// first, for the "where was I?" view. A nil view means nothing is active.
func (s *ResumeService) Resume(ctx context.Context) (*domain.ResumeView, error) {
	task, err := s.taskRepo.SelectResume(ctx)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	notes, err := s.noteRepo.Latest(ctx, task.ID, resumeNoteWindow)
	if err != nil {
		return nil, err
	}

	return &domain.ResumeView{Task: task, LatestNotes: notes}, nil
}
