package services

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"wall-coverage-service/internal/domain"
)

func TestPlanCoverageEmptyWallFullCoverage(t *testing.T) {
	req := PlanRequest{
		Wall: domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2},
	}

	trajectory, err := PlanCoverage(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 15 sweep lines, one stroke each: entry plus exit waypoint per line.
	if len(trajectory.Waypoints) != 30 {
		t.Fatalf("expected 30 waypoints, got %d", len(trajectory.Waypoints))
	}
	if trajectory.Warning != "" {
		t.Fatalf("unexpected warning: %q", trajectory.Warning)
	}

	paintable := 4.0 * 3.0
	if math.Abs(trajectory.Metrics.CoverageArea-paintable) > 1e-6 {
		t.Errorf("CoverageArea = %v, want %v", trajectory.Metrics.CoverageArea, paintable)
	}
	if math.Abs(trajectory.Metrics.Efficiency-1.0) > 1e-9 {
		t.Errorf("Efficiency = %v, want 1.0", trajectory.Metrics.Efficiency)
	}
}

func TestPlanCoverageDeterministic(t *testing.T) {
	req := PlanRequest{
		Wall: domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2, Clearance: 0.05},
		Obstacles: []domain.Obstacle{
			{X: 1, Y: 1, Width: 1, Height: 1},
			{X: 2.5, Y: 0.5, Width: 0.5, Height: 2},
		},
	}

	first, err := PlanCoverage(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PlanCoverage(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Waypoints, second.Waypoints) {
		t.Error("identical requests produced different waypoint sequences")
	}
	if first.Metrics != second.Metrics {
		t.Errorf("identical requests produced different metrics: %+v vs %+v", first.Metrics, second.Metrics)
	}
}

func TestPlanCoverageClearanceMonotonicity(t *testing.T) {
	obstacles := []domain.Obstacle{{X: 1.5, Y: 1, Width: 1, Height: 1}}

	previous := math.Inf(1)
	for _, clearance := range []float64{0, 0.05, 0.1, 0.2} {
		req := PlanRequest{
			Wall:      domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2, Clearance: clearance},
			Obstacles: obstacles,
		}
		trajectory, err := PlanCoverage(req)
		if err != nil {
			t.Fatalf("clearance %v: unexpected error: %v", clearance, err)
		}
		if trajectory.Metrics.CoverageArea > previous+1e-9 {
			t.Fatalf("clearance %v increased coverage: %v > %v", clearance, trajectory.Metrics.CoverageArea, previous)
		}
		previous = trajectory.Metrics.CoverageArea
	}
}

func TestPlanCoveragePaintStrokesAvoidInflatedObstacles(t *testing.T) {
	req := PlanRequest{
		Wall: domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2, Clearance: 0.05},
		Obstacles: []domain.Obstacle{
			{X: 1, Y: 1, Width: 1, Height: 1},
			{X: 0, Y: 2, Width: 0.5, Height: 0.5},
		},
	}

	trajectory, err := PlanCoverage(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zones := InflateObstacles(req.Wall, req.Obstacles)
	for i := 1; i < len(trajectory.Waypoints); i++ {
		if !trajectory.Waypoints[i].Painting {
			continue
		}
		a := trajectory.Waypoints[i-1]
		b := trajectory.Waypoints[i]

		if math.Abs(a.Y-b.Y) > 1e-9 {
			t.Fatalf("paint stroke %d is not horizontal: %+v -> %+v", i, a, b)
		}

		lo, hi := min(a.X, b.X), max(a.X, b.X)
		for _, z := range zones {
			if !z.ContainsY(a.Y, 1e-9) {
				continue
			}
			if overlap := min(hi, z.MaxX()) - max(lo, z.X); overlap > 1e-6 {
				t.Fatalf("paint stroke %d crosses forbidden zone %+v: %+v -> %+v", i, z, a, b)
			}
		}
	}
}

func TestPlanCoverageInfeasibleToolWiderThanWall(t *testing.T) {
	req := PlanRequest{
		Wall: domain.WallSpec{Width: 4, Height: 0.15, ToolWidth: 0.2},
	}

	trajectory, err := PlanCoverage(req)
	if err != nil {
		t.Fatalf("infeasible geometry must not fail: %v", err)
	}

	if len(trajectory.Waypoints) != 0 {
		t.Fatalf("expected zero waypoints, got %d", len(trajectory.Waypoints))
	}
	if trajectory.Metrics.CoverageArea != 0 {
		t.Errorf("CoverageArea = %v, want 0", trajectory.Metrics.CoverageArea)
	}
	if !strings.Contains(trajectory.Warning, "infeasible geometry") {
		t.Errorf("warning = %q, want infeasible geometry mention", trajectory.Warning)
	}
}

func TestPlanCoverageInfeasibleFullyBlocked(t *testing.T) {
	req := PlanRequest{
		Wall:      domain.WallSpec{Width: 1, Height: 1, ToolWidth: 0.2, Clearance: 0.05},
		Obstacles: []domain.Obstacle{{X: 0.1, Y: 0.1, Width: 0.8, Height: 0.8}},
	}

	trajectory, err := PlanCoverage(req)
	if err != nil {
		t.Fatalf("fully blocked wall must not fail: %v", err)
	}

	if len(trajectory.Waypoints) != 0 {
		t.Fatalf("expected zero waypoints, got %d", len(trajectory.Waypoints))
	}
	if !strings.Contains(trajectory.Warning, "fully blocked") {
		t.Errorf("warning = %q, want fully blocked mention", trajectory.Warning)
	}
}

func TestPlanCoverageSpanningObstacleKeepsAlternation(t *testing.T) {
	// A band obstacle blocks the middle sweep lines completely. Lines above
	// it must keep alternating as if the blocked lines had been traversed.
	req := PlanRequest{
		Wall:      domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2, Clearance: 0.05},
		Obstacles: []domain.Obstacle{{X: 0, Y: 1.4, Width: 4, Height: 0.2}},
	}

	trajectory, err := PlanCoverage(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trajectory.Waypoints) == 0 {
		t.Fatal("expected waypoints above and below the band")
	}

	// Zone spans y in [1.25, 1.75]: lines 1.3, 1.5, 1.7 are blocked (3 lines).
	// Below: 0.1..1.1 (6 lines), above: 1.9..2.9 (6 lines), 2 waypoints each.
	if len(trajectory.Waypoints) != 24 {
		t.Fatalf("expected 24 waypoints, got %d", len(trajectory.Waypoints))
	}

	// The blocked lines still flip the sweep direction, so line 1.9 (index 9,
	// odd) must run right-to-left.
	var entry19 *domain.Waypoint
	for i := range trajectory.Waypoints {
		if math.Abs(trajectory.Waypoints[i].Y-1.9) < 1e-6 {
			entry19 = &trajectory.Waypoints[i]
			break
		}
	}
	if entry19 == nil {
		t.Fatal("no waypoint found on line y=1.9")
	}
	if math.Abs(entry19.X-3.9) > 1e-6 {
		t.Errorf("line 1.9 entered at x=%v, want 3.9 (right-to-left after three skipped lines)", entry19.X)
	}
}

func TestPlanCoverageValidation(t *testing.T) {
	wall := domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2}

	cases := []struct {
		name      string
		req       PlanRequest
		wantError error
	}{
		{
			name:      "wall too narrow",
			req:       PlanRequest{Wall: domain.WallSpec{Width: 0.05, Height: 3, ToolWidth: 0.2}},
			wantError: ErrInvalidWallDimensions,
		},
		{
			name:      "wall too tall",
			req:       PlanRequest{Wall: domain.WallSpec{Width: 4, Height: 25, ToolWidth: 0.2}},
			wantError: ErrInvalidWallDimensions,
		},
		{
			name:      "tool too wide",
			req:       PlanRequest{Wall: domain.WallSpec{Width: 4, Height: 3, ToolWidth: 1.5}},
			wantError: ErrInvalidToolWidth,
		},
		{
			name:      "negative clearance",
			req:       PlanRequest{Wall: domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2, Clearance: -0.1}},
			wantError: ErrInvalidClearance,
		},
		{
			name: "obstacle outside wall",
			req: PlanRequest{
				Wall:      wall,
				Obstacles: []domain.Obstacle{{X: 3.5, Y: 1, Width: 1, Height: 1}},
			},
			wantError: ErrObstacleOutOfBounds,
		},
		{
			name: "obstacle with non-positive size",
			req: PlanRequest{
				Wall:      wall,
				Obstacles: []domain.Obstacle{{X: 1, Y: 1, Width: 0, Height: 1}},
			},
			wantError: ErrObstacleOutOfBounds,
		},
	}

	for _, tc := range cases {
		_, err := PlanCoverage(tc.req)
		if !errors.Is(err, tc.wantError) {
			t.Errorf("%s: error = %v, want %v", tc.name, err, tc.wantError)
		}
		if err != nil && !IsValidationError(err) {
			t.Errorf("%s: IsValidationError = false for %v", tc.name, err)
		}
	}
}

func TestPlanCoverageTooManyObstacles(t *testing.T) {
	obstacles := make([]domain.Obstacle, MaxObstacles+1)
	for i := range obstacles {
		obstacles[i] = domain.Obstacle{X: 0.1, Y: 0.1, Width: 0.05, Height: 0.05}
	}

	_, err := PlanCoverage(PlanRequest{
		Wall:      domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2},
		Obstacles: obstacles,
	})
	if !errors.Is(err, ErrTooManyObstacles) {
		t.Fatalf("error = %v, want %v", err, ErrTooManyObstacles)
	}
}

func TestPlanCoverageOverlappingObstaclesMergeProjections(t *testing.T) {
	// Overlapping obstacles are legal; their forbidden zones union per line.
	req := PlanRequest{
		Wall: domain.WallSpec{Width: 4, Height: 3, ToolWidth: 0.2},
		Obstacles: []domain.Obstacle{
			{X: 1, Y: 1, Width: 1, Height: 1},
			{X: 1.5, Y: 1.2, Width: 1, Height: 1},
		},
	}

	trajectory, err := PlanCoverage(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// On a line crossing both zones there is one merged blocked region, so
	// exactly two free segments.
	zones := InflateObstacles(req.Wall, req.Obstacles)
	segs := FreeSegments(req.Wall, zones, 1.5)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments around the merged zones, got %v", segs)
	}
	if trajectory.Metrics.Efficiency <= 0 || trajectory.Metrics.Efficiency > 1 {
		t.Errorf("Efficiency = %v, want within (0, 1]", trajectory.Metrics.Efficiency)
	}
}
