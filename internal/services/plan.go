package services

import (
	"fmt"
	"wall-coverage-service/internal/domain"
)

// PlanRequest carries the inputs of one planning invocation.
type PlanRequest struct {
	Wall      domain.WallSpec
	Obstacles []domain.Obstacle
	// ToolSpeed in metres per second; DefaultToolSpeed when zero.
	ToolSpeed float64
}

// PlanCoverage generates a continuous, obstacle-avoiding coverage trajectory
// for one wall.
//
// The computation is a pure function of its inputs: it performs no I/O,
// holds no shared state, and identical requests yield identical waypoint
// sequences and metrics. Geometry that leaves nothing to paint (tool wider
// than the wall, or every sweep line fully blocked) produces a zero-coverage
// trajectory with a warning attached, not an error.
func PlanCoverage(req PlanRequest) (*domain.Trajectory, error) {
	if err := ValidateInput(req.Wall, req.Obstacles); err != nil {
		return nil, fmt.Errorf("plan coverage: %w", err)
	}

	zones := InflateObstacles(req.Wall, req.Obstacles)
	heights := SweepLines(req.Wall)

	lines := make([]SweepLine, 0, len(heights))
	for _, y := range heights {
		lines = append(lines, SweepLine{Y: y, Segments: FreeSegments(req.Wall, zones, y)})
	}

	path := AssemblePath(lines)

	trajectory := &domain.Trajectory{
		Wall:      req.Wall,
		Obstacles: append([]domain.Obstacle(nil), req.Obstacles...),
		Waypoints: path,
		Metrics:   ComputeMetrics(req.Wall, req.Obstacles, path, req.ToolSpeed),
	}

	if len(path) == 0 {
		if len(heights) == 0 {
			trajectory.Warning = fmt.Sprintf(
				"infeasible geometry: tool width %.3fm exceeds wall height %.3fm, no sweep line fits",
				req.Wall.ToolWidth, req.Wall.Height)
		} else {
			trajectory.Warning = "infeasible geometry: every sweep line is fully blocked by inflated obstacles"
		}
	}

	return trajectory, nil
}
