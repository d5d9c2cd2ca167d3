package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project. Duplicate names (exact, case-sensitive) fail
// with domain.ErrValidation; the check and insert share one transaction.
func (r *ProjectRepository) Create(ctx context.Context, name string) (*domain.Project, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM projects WHERE name = ?;`, name).Scan(&exists)
	if err == nil {
		return nil, fmt.Errorf("%w: project %q already exists", domain.ErrValidation, name)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO projects (name, created_at) VALUES (?, ?);`,
		name, encodeTime(now),
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.Project{ID: id, Name: name, CreatedAt: now}, nil
}

// GetByID returns a project or domain.ErrNotFound.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `SELECT id, name, created_at FROM projects WHERE id = ?;`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// GetByName returns a project by exact name or domain.ErrNotFound.
func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	const q = `SELECT id, name, created_at FROM projects WHERE name = ?;`
	return r.scanOne(r.db.QueryRowContext(ctx, q, name))
}

// List returns all projects, oldest first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, name, created_at
FROM projects
ORDER BY created_at ASC, id ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var (
			p       domain.Project
			created string
		)
		if err := rows.Scan(&p.ID, &p.Name, &created); err != nil {
			return nil, err
		}
		if p.CreatedAt, err = decodeTime(created); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a project. A project still referenced by tasks fails with
// domain.ErrIntegrity; a missing id fails with domain.ErrNotFound.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var refs int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE project_id = ?;`, id,
	).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: project %d still has %d task(s)", domain.ErrIntegrity, id, refs)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?;`, id)
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

	return tx.Commit()
}

func (r *ProjectRepository) scanOne(row *sql.Row) (*domain.Project, error) {
	var (
		p       domain.Project
		created string
	)
	err := row.Scan(&p.ID, &p.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.CreatedAt, err = decodeTime(created); err != nil {
		return nil, err
	}
	return &p, nil
}
