package ports

import (
	"context"
	"errors"
	"wall-coverage-service/internal/domain"
)

// ErrTrajectoryNotFound is returned by Get when no trajectory has the
// requested identifier.
var ErrTrajectoryNotFound = errors.New("trajectory not found")

// Port: a boundary for persisting planned trajectories and serving them back.
type TrajectoryRepository interface {
	// Save stores a trajectory and assigns its ID and CreatedAt.
	Save(ctx context.Context, t *domain.Trajectory) error
	// Get returns the trajectory with the given identifier.
	Get(ctx context.Context, id int64) (*domain.Trajectory, error)
	// List returns all stored trajectories, newest first.
	List(ctx context.Context) ([]*domain.Trajectory, error)
}
