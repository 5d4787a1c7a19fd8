package db

import (
	"database/sql"
	"fmt"
	"time"
)

// OpenPostgres opens a pooled connection to the shared trajectory database
// and verifies it is reachable.
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open postgres: verify connection: %w", err)
	}

	return db, nil
}
