package services

import "wall-coverage-service/internal/domain"

// AssemblePath stitches the free segments of all sweep lines into one
// continuous ordered waypoint sequence.
//
// Traversal alternates per line starting left-to-right (boustrophedon).
// Each segment contributes a transition waypoint to its entry point followed
// by a paint waypoint to its exit point; the move between a segment's exit
// and the next segment's entry is the obstacle-avoidance jump, and the move
// between lines is a single straight transition. Fully blocked lines emit no
// waypoints but still flip the direction, so the next non-empty line
// continues the alternation instead of resetting it.
//
// The sequence starts at the first non-empty line's first entry point and
// ends at the last painted point. When every line is blocked the result is
// empty, which is a valid fully-blocked outcome rather than an error.
func AssemblePath(lines []SweepLine) []domain.Waypoint {
	var path []domain.Waypoint

	forward := true
	for _, line := range lines {
		if len(line.Segments) == 0 {
			forward = !forward
			continue
		}

		if forward {
			for _, seg := range line.Segments {
				path = appendStroke(path, line.Y, seg.Start, seg.End)
			}
		} else {
			for i := len(line.Segments) - 1; i >= 0; i-- {
				seg := line.Segments[i]
				path = appendStroke(path, line.Y, seg.End, seg.Start)
			}
		}

		forward = !forward
	}

	return path
}

// appendStroke emits the transition into a segment and the paint stroke
// across it.
func appendStroke(path []domain.Waypoint, y, entryX, exitX float64) []domain.Waypoint {
	path = append(path, domain.Waypoint{X: entryX, Y: y, Painting: false})
	path = append(path, domain.Waypoint{X: exitX, Y: y, Painting: true})
	return path
}
