package domain

import "time"

// Waypoint is one ordered step of a trajectory. Painting describes the segment
// leading into this waypoint from the previous one: a paint stroke when true,
// a non-painting transition move when false. The first waypoint of a
// trajectory has no preceding segment and is always a transition.
type Waypoint struct {
	X        float64
	Y        float64
	Painting bool
}

func (wp Waypoint) Point() Point { return Point{X: wp.X, Y: wp.Y} }

// Metrics are values derived from a finished waypoint sequence.
// They are recomputed from a trajectory and never set independently.
type Metrics struct {
	// CoverageArea is the painted area in square metres.
	CoverageArea float64
	// PathLength is the total distance travelled, painting or not.
	PathLength float64
	// Efficiency is CoverageArea divided by the paintable area
	// (wall minus uninflated obstacle footprints), clamped to [0, 1].
	Efficiency float64
	// EstimatedTimeSeconds is PathLength divided by the assumed tool speed.
	EstimatedTimeSeconds float64
}

// Trajectory is the result of one planning invocation: the ordered waypoint
// sequence together with the inputs it was generated from and its derived
// metrics. Replanning produces a new Trajectory, never an in-place edit.
// ID and CreatedAt are assigned by the storage layer on save.
type Trajectory struct {
	ID        int64
	Wall      WallSpec
	Obstacles []Obstacle
	Waypoints []Waypoint
	Metrics   Metrics
	// Warning is set when the result is valid but degenerate, e.g. when the
	// geometry leaves nothing to paint. Empty for normal results.
	Warning   string
	CreatedAt time.Time
}
