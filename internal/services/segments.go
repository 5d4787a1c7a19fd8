package services

import (
	"wall-coverage-service/internal/domain"
	"wall-coverage-service/internal/geometry"
)

// Free segments narrower than this fraction of the tool width are treated as
// unreachable noise and discarded. A policy decision, not an error: such
// slivers come from near-touching forbidden zones and are too small to paint.
const minSegmentWidthFactor = 0.01

// SweepLine couples a scan height with its free segments, ordered by
// increasing x. A line with zero segments is fully blocked but still takes
// part in direction alternation.
type SweepLine struct {
	Y        float64
	Segments []geometry.Interval
}

// FreeSegments computes the x-intervals on the sweep line at height y where
// painting is permitted: the horizontal paintable extent [T/2, W − T/2] minus
// the projections of every forbidden zone whose vertical extent contains y.
func FreeSegments(wall domain.WallSpec, zones []domain.Rect, y float64) []geometry.Interval {
	half := wall.ToolWidth / 2
	paintable := geometry.Interval{Start: half, End: wall.Width - half}
	if paintable.Width() <= geometry.Epsilon {
		return nil
	}

	var blocked []geometry.Interval
	for _, z := range zones {
		if z.ContainsY(y, geometry.Epsilon) {
			blocked = append(blocked, geometry.Interval{Start: z.X, End: z.MaxX()})
		}
	}

	free := geometry.Subtract(paintable, blocked)

	minWidth := minSegmentWidthFactor * wall.ToolWidth
	kept := make([]geometry.Interval, 0, len(free))
	for _, seg := range free {
		if seg.Width() >= minWidth {
			kept = append(kept, seg)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	return kept
}
