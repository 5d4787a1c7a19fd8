package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"wall-coverage-service/internal/domain"
	"wall-coverage-service/internal/ports"
)

// SQLite-backed implementation of the TrajectoryRepository port.
type SqliteTrajectoryRepository struct{ DB *sql.DB }

func NewSqliteTrajectoryRepository(db *sql.DB) *SqliteTrajectoryRepository {
	return &SqliteTrajectoryRepository{DB: db}
}

// Save stores a trajectory and assigns its ID and CreatedAt.
func (s *SqliteTrajectoryRepository) Save(ctx context.Context, t *domain.Trajectory) error {
	if s.DB == nil {
		return errors.New("sqlite trajectory repository: DB is nil")
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
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		wallJSON, obstaclesJSON, waypointsJSON,
		t.Metrics.CoverageArea, t.Metrics.PathLength, t.Metrics.Efficiency, t.Metrics.EstimatedTimeSeconds,
		t.Warning, createdAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save trajectory: insert row: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save trajectory: last insert id: %w", err)
	}

	t.ID = id
	t.CreatedAt = createdAt
	return nil
}

// Get returns the trajectory with the given identifier.
func (s *SqliteTrajectoryRepository) Get(ctx context.Context, id int64) (*domain.Trajectory, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite trajectory repository: DB is nil")
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
	WHERE trajectory_id = ?;
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
func (s *SqliteTrajectoryRepository) List(ctx context.Context) ([]*domain.Trajectory, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite trajectory repository: DB is nil")
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

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrajectory(row rowScanner) (*domain.Trajectory, error) {
	var (
		id                                     int64
		wallJSON, obstaclesJSON, waypointsJSON string
		metrics                                domain.Metrics
		warning                                string
		createdAt                              int64
	)
	err := row.Scan(
		&id,
		&wallJSON, &obstaclesJSON, &waypointsJSON,
		&metrics.CoverageArea, &metrics.PathLength, &metrics.Efficiency, &metrics.EstimatedTimeSeconds,
		&warning, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	return unmarshalTrajectory(id, wallJSON, obstaclesJSON, waypointsJSON, metrics, warning, createdAt)
}
