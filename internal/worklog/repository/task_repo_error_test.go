package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
	"github.com/workmemory/worklog-backend/internal/worklog/repository"
)

// Driver-level failures are not reachable through a real database file, so
// these paths run against sqlmock.

func TestTaskRepository_GetByIDQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewTaskRepository(db)

	boom := errors.New("disk I/O error")
	mock.ExpectQuery(`SELECT .* FROM tasks WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnError(boom)

	_, err = repo.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound, "driver errors are not NotFound")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_DeleteExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewTaskRepository(db)

	boom := errors.New("database is locked")
	mock.ExpectExec(`DELETE FROM tasks WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnError(boom)

	err = repo.Delete(context.Background(), 7)
	require.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateRollsBackOnExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewTaskRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "title", "context", "next_action", "status", "priority",
		"project_id", "created_at", "updated_at",
	}).AddRow(
		int64(1), "fix bug", "", "", "active", "medium",
		nil, "2026-08-01 10:00:00.000000000", "2026-08-01 10:00:00.000000000",
	)

	boom := errors.New("database is locked")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM tasks WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(rows)
	mock.ExpectExec(`UPDATE tasks`).WillReturnError(boom)
	mock.ExpectRollback()

	title := "new title"
	_, err = repo.Update(context.Background(), 1, domain.UpdateTaskRequest{Title: &title})
	require.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}
