package services

import (
	"wall-coverage-service/internal/domain"
	"wall-coverage-service/internal/geometry"
)

// DefaultToolSpeed is the assumed tool travel speed in metres per second,
// used when a plan request does not configure one.
const DefaultToolSpeed = 0.5

// ComputeMetrics derives coverage and travel figures from a finished
// waypoint sequence.
//
// Each paint stroke covers a swath of (stroke length + tool width) × tool
// width: the tool's physical footprint extends half a width past each stroke
// endpoint, which is exactly what the tool-center offsets of the sweep
// extents leave uncovered. Efficiency measures against the true wall and
// obstacle geometry, not the safety-inflated one, and is clamped to [0, 1]
// because margin inflation and sub-threshold segment discarding can push the
// raw ratio past either bound.
func ComputeMetrics(wall domain.WallSpec, obstacles []domain.Obstacle, path []domain.Waypoint, toolSpeed float64) domain.Metrics {
	if toolSpeed <= 0 {
		toolSpeed = DefaultToolSpeed
	}

	var coverage, length float64
	for i := 1; i < len(path); i++ {
		d := path[i-1].Point().DistanceTo(path[i].Point())
		length += d
		if path[i].Painting {
			coverage += (d + wall.ToolWidth) * wall.ToolWidth
		}
	}

	paintable := wall.Area()
	for _, o := range obstacles {
		paintable -= o.Area()
	}

	efficiency := 0.0
	if paintable > geometry.Epsilon {
		efficiency = min(max(coverage/paintable, 0), 1)
	}

	return domain.Metrics{
		CoverageArea:         coverage,
		PathLength:           length,
		Efficiency:           efficiency,
		EstimatedTimeSeconds: length / toolSpeed,
	}
}
