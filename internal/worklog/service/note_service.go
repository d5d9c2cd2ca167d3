package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
	"github.com/workmemory/worklog-backend/internal/worklog/repository"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo *repository.NoteRepository
}

// NewNoteService creates a new NoteService
func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Add attaches a note to an existing task. The note type must be one of
// note/decision/blocker/snapshot and the body must be non-empty. Adding a
// note does not refresh the task's updated_at.
func (s *NoteService) Add(ctx context.Context, taskID int64, noteType, body string) (*domain.Note, error) {
	if noteType == "" {
		noteType = domain.NoteTypeNote
	}
	if !domain.ValidNoteType(noteType) {
		return nil, fmt.Errorf("%w: unknown note type %q", domain.ErrValidation, noteType)
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: note body required", domain.ErrValidation)
	}

	note := &domain.Note{
		TaskID:   taskID,
		NoteType: noteType,
		Body:     body,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// ListByTask returns the task's chronological note log, oldest first.
func (s *NoteService) ListByTask(ctx context.Context, taskID int64) ([]domain.Note, error) {
	return s.repo.ListByTask(ctx, taskID)
}

// Latest returns up to limit notes for the task, newest first.
func (s *NoteService) Latest(ctx context.Context, taskID int64, limit int) ([]domain.Note, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrValidation)
	}
	return s.repo.Latest(ctx, taskID, limit)
}

// Delete removes a single note by id.
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
