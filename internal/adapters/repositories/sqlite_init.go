package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTrajectoriesQuery := `
	CREATE TABLE IF NOT EXISTS trajectories (
		trajectory_id INTEGER PRIMARY KEY AUTOINCREMENT,
		wall_spec TEXT NOT NULL,
		obstacles TEXT NOT NULL,
		waypoints TEXT NOT NULL,
		coverage_area REAL NOT NULL DEFAULT 0,
		path_length REAL NOT NULL DEFAULT 0,
		efficiency REAL NOT NULL DEFAULT 0,
		estimated_time_seconds REAL NOT NULL DEFAULT 0,
		warning TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_trajectories_created_at
	ON trajectories(created_at);
	`

	statements := []string{
		createTrajectoriesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
