package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
)

// TaskRepository provides persistence operations for tasks
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, title, context, next_action, status, priority, project_id, created_at, updated_at`

// Create inserts a new task. A project_id referencing a missing project fails
// with domain.ErrValidation and persists nothing; the existence check and the
// insert share one transaction. On success the task's ID and timestamps are
// filled in (created_at == updated_at).
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if task.ProjectID != nil {
		if err := projectExists(ctx, tx, *task.ProjectID); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
INSERT INTO tasks (title, context, next_action, status, priority, project_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`,
		task.Title, task.Context, task.NextAction, task.Status, task.Priority,
		nullableID(task.ProjectID), encodeTime(now), encodeTime(now),
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

	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// GetByID returns a task or domain.ErrNotFound.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?;`
	task, err := scanTask(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return task, err
}

// List returns tasks matching the filter, most recently updated first
// (greatest id first among exact timestamp ties).
func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks`
	args := make([]any, 0, 2)
	where := ""

	if filter.Status != "" {
		where = " WHERE status = ?"
		args = append(args, filter.Status)
	}
	if filter.ProjectID != nil {
		if where == "" {
			where = " WHERE project_id = ?"
		} else {
			where += " AND project_id = ?"
		}
		args = append(args, *filter.ProjectID)
	}

	q += where + " ORDER BY updated_at DESC, id DESC;"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Task, 0, 16)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *task)
	}
	return out, rows.Err()
}

// Update applies a partial update inside one transaction: only fields present
// in the request change, updated_at is refreshed, and everything else stays
// untouched. Missing id fails with domain.ErrNotFound; a new project_id
// referencing a missing project fails with domain.ErrValidation.
func (r *TaskRepository) Update(ctx context.Context, id int64, req domain.UpdateTaskRequest) (*domain.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?;`
	task, err := scanTask(tx.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Context != nil {
		task.Context = *req.Context
	}
	if req.NextAction != nil {
		task.NextAction = *req.NextAction
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.ProjectID.Set {
		if req.ProjectID.Value != nil {
			if err := projectExists(ctx, tx, *req.ProjectID.Value); err != nil {
				return nil, err
			}
		}
		task.ProjectID = req.ProjectID.Value
	}

	// updated_at never goes backwards, even across a clock step.
	now := time.Now().UTC()
	if now.Before(task.UpdatedAt) {
		now = task.UpdatedAt
	}
	task.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
UPDATE tasks
SET title = ?, context = ?, next_action = ?, status = ?, priority = ?, project_id = ?, updated_at = ?
WHERE id = ?;
`,
		task.Title, task.Context, task.NextAction, task.Status, task.Priority,
		nullableID(task.ProjectID), encodeTime(task.UpdatedAt), id,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task and, through the notes foreign key's ON DELETE
// CASCADE, all of its notes in one atomic statement. A second delete of the
// same id fails with domain.ErrNotFound; deletion is deliberately not
// idempotent.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, id)
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

// SelectResume picks the task to resume: the active task with the greatest
// updated_at, ties broken by greatest id (most recently created). Returns
// (nil, nil) when no task is active — nothing to resume is not an error.
func (r *TaskRepository) SelectResume(ctx context.Context) (*domain.Task, error) {
	q := `
SELECT ` + taskColumns + `
FROM tasks
WHERE status = ?
ORDER BY updated_at DESC, id DESC
LIMIT 1;
`
	task, err := scanTask(r.db.QueryRowContext(ctx, q, domain.StatusActive))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return task, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task      domain.Task
		projectID sql.NullInt64
		created   string
		updated   string
	)
	err := row.Scan(
		&task.ID, &task.Title, &task.Context, &task.NextAction,
		&task.Status, &task.Priority, &projectID, &created, &updated,
	)
	if err != nil {
		return nil, err
	}
	if projectID.Valid {
		task.ProjectID = &projectID.Int64
	}
	if task.CreatedAt, err = decodeTime(created); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = decodeTime(updated); err != nil {
		return nil, err
	}
	return &task, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func projectExists(ctx context.Context, q queryRower, id int64) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM projects WHERE id = ?;`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: project %d does not exist", domain.ErrValidation, id)
	}
	return err
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
