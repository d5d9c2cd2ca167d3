package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/workmemory/worklog-backend/config"
	_ "modernc.org/sqlite"
)

// NewConnection opens (creating if necessary) the worklog database file and
// applies the schema. Foreign keys are enforced per connection via pragma,
// which the cascade delete of task notes relies on.
func NewConnection(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn := DSN(cfg)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite allows one writer at a time; a single pooled connection keeps
	// the pragmas applied and serializes conflicting writes.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// DSN builds the SQLite connection string for the configured file path.
func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		cfg.Path,
	)
}
