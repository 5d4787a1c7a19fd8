package services

import (
	"errors"
	"fmt"
	"wall-coverage-service/internal/domain"
	"wall-coverage-service/internal/geometry"
)

// Input limits. Obstacle containment beyond these bounds would break the
// interval-arithmetic invariants downstream, so they are re-checked here even
// when the caller claims to have validated already.
const (
	MinWallWidth  = 0.1
	MaxWallWidth  = 50.0
	MinWallHeight = 0.1
	MaxWallHeight = 20.0
	MinToolWidth  = 0.05
	MaxToolWidth  = 1.0
	MaxObstacles  = 20
)

var (
	ErrInvalidWallDimensions = errors.New("invalid wall dimensions")
	ErrInvalidToolWidth      = errors.New("invalid tool width")
	ErrInvalidClearance      = errors.New("invalid safety clearance")
	ErrTooManyObstacles      = errors.New("too many obstacles")
	ErrObstacleOutOfBounds   = errors.New("obstacle out of bounds")
)

// ValidateInput checks a planning request against the documented input limits.
// All checks run before any geometry computation; the returned error wraps one
// of the sentinel kinds above and names the offending value.
func ValidateInput(wall domain.WallSpec, obstacles []domain.Obstacle) error {
	if wall.Width < MinWallWidth || wall.Width > MaxWallWidth {
		return fmt.Errorf("%w: width=%.3fm must be within [%.1f, %.1f]",
			ErrInvalidWallDimensions, wall.Width, MinWallWidth, MaxWallWidth)
	}
	if wall.Height < MinWallHeight || wall.Height > MaxWallHeight {
		return fmt.Errorf("%w: height=%.3fm must be within [%.1f, %.1f]",
			ErrInvalidWallDimensions, wall.Height, MinWallHeight, MaxWallHeight)
	}
	if wall.ToolWidth < MinToolWidth || wall.ToolWidth > MaxToolWidth {
		return fmt.Errorf("%w: tool_width=%.3fm must be within [%.2f, %.1f]",
			ErrInvalidToolWidth, wall.ToolWidth, MinToolWidth, MaxToolWidth)
	}
	if wall.Clearance < 0 {
		return fmt.Errorf("%w: clearance=%.3fm must not be negative",
			ErrInvalidClearance, wall.Clearance)
	}

	if len(obstacles) > MaxObstacles {
		return fmt.Errorf("%w: got %d, limit is %d",
			ErrTooManyObstacles, len(obstacles), MaxObstacles)
	}

	for i, o := range obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("%w: obstacle #%d has non-positive size %.3fx%.3f",
				ErrObstacleOutOfBounds, i, o.Width, o.Height)
		}
		if o.X < -geometry.Epsilon || o.Y < -geometry.Epsilon ||
			o.X+o.Width > wall.Width+geometry.Epsilon ||
			o.Y+o.Height > wall.Height+geometry.Epsilon {
			return fmt.Errorf("%w: obstacle #%d at (%.3f, %.3f) size %.3fx%.3f extends outside the %.3fx%.3f wall",
				ErrObstacleOutOfBounds, i, o.X, o.Y, o.Width, o.Height, wall.Width, wall.Height)
		}
	}

	return nil
}

// IsValidationError reports whether err wraps one of the input-validation
// error kinds, as opposed to an internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidWallDimensions) ||
		errors.Is(err, ErrInvalidToolWidth) ||
		errors.Is(err, ErrInvalidClearance) ||
		errors.Is(err, ErrTooManyObstacles) ||
		errors.Is(err, ErrObstacleOutOfBounds)
}
