package services

import (
	"math"
	"testing"
	"wall-coverage-service/internal/domain"
)

func TestSweepLinesSpacing(t *testing.T) {
	wall := domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2}

	lines := SweepLines(wall)

	if len(lines) != 15 {
		t.Fatalf("expected 15 sweep lines, got %d", len(lines))
	}
	if math.Abs(lines[0]-0.1) > 1e-9 {
		t.Errorf("first line = %v, want 0.1", lines[0])
	}
	if math.Abs(lines[14]-2.9) > 1e-6 {
		t.Errorf("last line = %v, want 2.9", lines[14])
	}
	for i := 1; i < len(lines); i++ {
		if math.Abs(lines[i]-lines[i-1]-0.2) > 1e-9 {
			t.Fatalf("lines %d..%d spaced %v, want 0.2", i-1, i, lines[i]-lines[i-1])
		}
	}
}

func TestSweepLinesToolWiderThanWall(t *testing.T) {
	wall := domain.WallSpec{Width: 4, Height: 0.15, ToolWidth: 0.2}

	if lines := SweepLines(wall); len(lines) != 0 {
		t.Fatalf("expected no sweep lines, got %v", lines)
	}
}

func TestSweepLinesExactFit(t *testing.T) {
	// Tool height equals wall height: exactly one centered line.
	wall := domain.WallSpec{Width: 4, Height: 0.2, ToolWidth: 0.2}

	lines := SweepLines(wall)
	if len(lines) != 1 {
		t.Fatalf("expected 1 sweep line, got %v", lines)
	}
	if math.Abs(lines[0]-0.1) > 1e-9 {
		t.Errorf("line = %v, want 0.1", lines[0])
	}
}
