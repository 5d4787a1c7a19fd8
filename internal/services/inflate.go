package services

import "wall-coverage-service/internal/domain"

// InflateObstacles expands each obstacle by the wall's inflation margin
// (half tool width plus clearance) on every side and clips the result to the
// wall bounds. The returned rectangles are the forbidden zones the tool
// center must avoid.
//
// Overlapping obstacles are inflated independently; their zones are combined
// later by per-line interval union, never by shape merging. An inflated zone
// that covers the wall's full horizontal extent is a valid degenerate case:
// the affected sweep lines simply contribute zero free segments.
func InflateObstacles(wall domain.WallSpec, obstacles []domain.Obstacle) []domain.Rect {
	margin := wall.InflationMargin()

	zones := make([]domain.Rect, 0, len(obstacles))
	for _, o := range obstacles {
		x0 := max(0, o.X-margin)
		y0 := max(0, o.Y-margin)
		x1 := min(wall.Width, o.X+o.Width+margin)
		y1 := min(wall.Height, o.Y+o.Height+margin)

		zones = append(zones, domain.Rect{
			X:      x0,
			Y:      y0,
			Width:  x1 - x0,
			Height: y1 - y0,
		})
	}

	return zones
}
