package domain

import "math"

// 2-D point in the wall's coordinate frame.
// Units are metres; the origin is the wall's bottom-left corner, y increases upward.
type Point struct {
	X float64
	Y float64
}

// Euclidean distance to another point.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}
