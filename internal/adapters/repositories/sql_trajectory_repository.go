package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"wall-coverage-service/internal/domain"
	"wall-coverage-service/internal/platform/obs"
	"wall-coverage-service/internal/ports"
)

// SQLTrajectoryRepository is the Postgres-backed implementation of the
// TrajectoryRepository port, used by deployments that share one database
// across instances. Placeholders and RETURNING differ from the SQLite
// adapter; the stored document shape is identical.
type SQLTrajectoryRepository struct{ DB *sql.DB }

func NewSQLTrajectoryRepository(db *sql.DB) *SQLTrajectoryRepository {
	return &SQLTrajectoryRepository{DB: db}
}

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS trajectories (
		trajectory_id BIGSERIAL PRIMARY KEY,
		wall_spec TEXT NOT NULL,
		obstacles TEXT NOT NULL,
		waypoints TEXT NOT NULL,
		coverage_area DOUBLE PRECISION NOT NULL DEFAULT 0,
		path_length DOUBLE PRECISION NOT NULL DEFAULT 0,
		efficiency DOUBLE PRECISION NOT NULL DEFAULT 0,
		estimated_time_seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
		warning TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_trajectories_created_at
	ON trajectories(created_at);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init postgres schema: %w", err)
	}

	return nil
}

// Save stores a trajectory and assigns its ID and CreatedAt.
func (s *SQLTrajectoryRepository) Save(ctx context.Context, t *domain.Trajectory) (err error) {
	defer obs.Time(ctx, "trajectory.repo.Save")(&err)

	if s.DB == nil {
		return errors.New("sql trajectory repository: DB is nil")
	}
	if t == nil {
		return errors.New("save trajectory: trajectory is nil")
	}

	wallJSON, obstaclesJSON, waypointsJSON, err := marshalTrajectory(t)
	if err != nil {
		return fmt.Errorf("save trajectory: %w", err)
	}

	createdAt := time.Now().UTC().Truncate(time.Second)

	query := `
	INSERT INTO trajectories (
		wall_spec,
		obstacles,
		waypoints,
		coverage_area,
		path_length,
		efficiency,
		estimated_time_seconds,
		warning,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING trajectory_id;
	`
	var id int64
	err = s.DB.QueryRowContext(ctx, query,
		wallJSON, obstaclesJSON, waypointsJSON,
		t.Metrics.CoverageArea, t.Metrics.PathLength, t.Metrics.Efficiency, t.Metrics.EstimatedTimeSeconds,
		t.Warning, createdAt.Unix(),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("save trajectory: insert row: %w", err)
	}

	t.ID = id
	t.CreatedAt = createdAt
	return nil
}

// Get returns the trajectory with the given identifier.
func (s *SQLTrajectoryRepository) Get(ctx context.Context, id int64) (_ *domain.Trajectory, err error) {
	defer obs.Time(ctx, "trajectory.repo.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("sql trajectory repository: DB is nil")
	}

	query := `
	SELECT
		trajectory_id,
		wall_spec,
		obstacles,
		waypoints,
		coverage_area,
		path_length,
		efficiency,
		estimated_time_seconds,
		warning,
		created_at
	FROM trajectories
	WHERE trajectory_id = $1;
	`
	t, err := scanTrajectory(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get trajectory %d: %w", id, ports.ErrTrajectoryNotFound)
		}
		return nil, fmt.Errorf("get trajectory %d: %w", id, err)
	}

	return t, nil
}

// List returns all stored trajectories, newest first.
func (s *SQLTrajectoryRepository) List(ctx context.Context) (_ []*domain.Trajectory, err error) {
	defer obs.Time(ctx, "trajectory.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql trajectory repository: DB is nil")
	}

	query := `
	SELECT
		trajectory_id,
		wall_spec,
		obstacles,
		waypoints,
		coverage_area,
		path_length,
		efficiency,
		estimated_time_seconds,
		warning,
		created_at
	FROM trajectories
	ORDER BY trajectory_id DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trajectories: query trajectories table: %w", err)
	}
	defer rows.Close()

	trajectories := make([]*domain.Trajectory, 0, 16)
	for rows.Next() {
		t, err := scanTrajectory(rows)
		if err != nil {
			return nil, fmt.Errorf("list trajectories: %w", err)
		}
		trajectories = append(trajectories, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trajectories: row iteration: %w", err)
	}

	return trajectories, nil
}
