package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
)

// NoteRepository provides persistence operations for notes
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a note attached to an existing task. A missing task fails
// with domain.ErrNotFound. Adding a note never changes the owning task's
// updated_at.
func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := taskExists(ctx, tx, note.TaskID); err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO notes (task_id, note_type, body, created_at) VALUES (?, ?, ?, ?);`,
		note.TaskID, note.NoteType, note.Body, encodeTime(now),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	note.ID = id
	note.CreatedAt = now
	return nil
}

// ListByTask returns a task's notes as a chronological log (oldest first).
// A missing task fails with domain.ErrNotFound rather than returning an
// empty log.
func (r *NoteRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.Note, error) {
	if err := taskExists(ctx, r.db, taskID); err != nil {
		return nil, err
	}

	const q = `
SELECT id, task_id, note_type, body, created_at
FROM notes
WHERE task_id = ?
ORDER BY created_at ASC, id ASC;
`
	return r.queryNotes(ctx, q, taskID)
}

// Latest returns up to limit notes for a task, newest first. Used by the
// resume view; missing tasks fail with domain.ErrNotFound.
func (r *NoteRepository) Latest(ctx context.Context, taskID int64, limit int) ([]domain.Note, error) {
	if err := taskExists(ctx, r.db, taskID); err != nil {
		return nil, err
	}

	const q = `
SELECT id, task_id, note_type, body, created_at
FROM notes
WHERE task_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?;
`
	return r.queryNotes(ctx, q, taskID, limit)
}

// Delete removes a single note; missing ids fail with domain.ErrNotFound.
// Notes are leaves, nothing cascades from here.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByTask reports how many notes a task owns.
func (r *NoteRepository) CountByTask(ctx context.Context, taskID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes WHERE task_id = ?;`, taskID).Scan(&n)
	return n, err
}

func (r *NoteRepository) queryNotes(ctx context.Context, q string, args ...any) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Note, 0, 16)
	for rows.Next() {
		var (
			note    domain.Note
			created string
		)
		if err := rows.Scan(&note.ID, &note.TaskID, &note.NoteType, &note.Body, &created); err != nil {
			return nil, err
		}
		if note.CreatedAt, err = decodeTime(created); err != nil {
			return nil, err
		}
		out = append(out, note)
	}
	return out, rows.Err()
}

func taskExists(ctx context.Context, q queryRower, id int64) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM tasks WHERE id = ?;`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: task %d", domain.ErrNotFound, id)
	}
	return err
}
