package bootstrap

import (
	"database/sql"

	"github.com/workmemory/worklog-backend/config"
	"github.com/workmemory/worklog-backend/internal/storage/sqlite"
)

// OpenDB opens the worklog database file and runs schema migration.
func OpenDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	return sqlite.NewConnection(cfg)
}
