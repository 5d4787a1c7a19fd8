package services

import (
	"wall-coverage-service/internal/domain"
	"wall-coverage-service/internal/geometry"
)

// SweepLines returns the ordered tool-center scan heights, bottom to top.
// Lines sit at y = T/2, T/2 + T, T/2 + 2T, ... while y ≤ H − T/2, so the
// tool's physical extent stays within the wall on every line. When the tool
// is wider than the wall is tall, no lines fit and the result is empty.
func SweepLines(wall domain.WallSpec) []float64 {
	half := wall.ToolWidth / 2
	limit := wall.Height - half

	var lines []float64
	for y := half; y <= limit+geometry.Epsilon; y += wall.ToolWidth {
		lines = append(lines, y)
	}

	return lines
}
