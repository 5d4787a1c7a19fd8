package domain

// WallSpec describes the rectangular work surface and the tool moving across it.
// Dimensions are metres. Valid ranges: width 0.1–50, height 0.1–20, tool width
// 0.05–1.0, clearance ≥ 0. A spec is immutable once a plan request is accepted.
type WallSpec struct {
	Width     float64
	Height    float64
	ToolWidth float64
	Clearance float64
}

func (w WallSpec) Area() float64 { return w.Width * w.Height }

// InflationMargin is the distance the tool center must keep from any obstacle:
// half the tool's physical extent plus the configured safety clearance.
func (w WallSpec) InflationMargin() float64 {
	return w.ToolWidth/2 + w.Clearance
}

// Obstacle is an axis-aligned rectangular region of the wall that must not be
// painted, anchored at its bottom-left corner.
type Obstacle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (o Obstacle) Area() float64 { return o.Width * o.Height }
