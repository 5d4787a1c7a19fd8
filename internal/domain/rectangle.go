package domain

// Axis-aligned rectangle in the wall's coordinate frame, anchored at its
// bottom-left corner. Used both for obstacles and for their inflated
// forbidden zones.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) MaxX() float64 { return r.X + r.Width }

func (r Rect) MaxY() float64 { return r.Y + r.Height }

func (r Rect) Area() float64 { return r.Width * r.Height }

// Contains reports whether the point lies inside the rectangle (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// ContainsY reports whether a horizontal line at height y crosses the
// rectangle's vertical extent. Edges count as crossing within tol, so a sweep
// line exactly tangent to a forbidden zone is treated as blocked.
func (r Rect) ContainsY(y, tol float64) bool {
	return y >= r.Y-tol && y <= r.MaxY()+tol
}
