package repositories

import (
	"encoding/json"
	"fmt"
	"time"
	"wall-coverage-service/internal/domain"
)

// Persistence shapes for the JSON columns of the trajectories table. The
// stored document must round-trip the planner's output losslessly: wall
// dimensions including tool width and clearance, the obstacle list, and the
// ordered waypoints with their painting flags.

type wallRecord struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	ToolWidth float64 `json:"tool_width"`
	Clearance float64 `json:"clearance"`
}

type obstacleRecord struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type waypointRecord struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Painting bool    `json:"painting"`
}

func marshalTrajectory(t *domain.Trajectory) (wallJSON, obstaclesJSON, waypointsJSON string, err error) {
	wall, err := json.Marshal(wallRecord{
		Width:     t.Wall.Width,
		Height:    t.Wall.Height,
		ToolWidth: t.Wall.ToolWidth,
		Clearance: t.Wall.Clearance,
	})
	if err != nil {
		return "", "", "", fmt.Errorf("marshal trajectory: wall: %w", err)
	}

	obstacles := make([]obstacleRecord, 0, len(t.Obstacles))
	for _, o := range t.Obstacles {
		obstacles = append(obstacles, obstacleRecord{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	obstaclesBytes, err := json.Marshal(obstacles)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal trajectory: obstacles: %w", err)
	}

	waypoints := make([]waypointRecord, 0, len(t.Waypoints))
	for _, wp := range t.Waypoints {
		waypoints = append(waypoints, waypointRecord{X: wp.X, Y: wp.Y, Painting: wp.Painting})
	}
	waypointsBytes, err := json.Marshal(waypoints)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal trajectory: waypoints: %w", err)
	}

	return string(wall), string(obstaclesBytes), string(waypointsBytes), nil
}

func unmarshalTrajectory(
	id int64,
	wallJSON, obstaclesJSON, waypointsJSON string,
	metrics domain.Metrics,
	warning string,
	createdAtUnix int64,
) (*domain.Trajectory, error) {
	var wall wallRecord
	if err := json.Unmarshal([]byte(wallJSON), &wall); err != nil {
		return nil, fmt.Errorf("unmarshal trajectory %d: wall: %w", id, err)
	}

	var obstacles []obstacleRecord
	if err := json.Unmarshal([]byte(obstaclesJSON), &obstacles); err != nil {
		return nil, fmt.Errorf("unmarshal trajectory %d: obstacles: %w", id, err)
	}

	var waypoints []waypointRecord
	if err := json.Unmarshal([]byte(waypointsJSON), &waypoints); err != nil {
		return nil, fmt.Errorf("unmarshal trajectory %d: waypoints: %w", id, err)
	}

	t := &domain.Trajectory{
		ID: id,
		Wall: domain.WallSpec{
			Width:     wall.Width,
			Height:    wall.Height,
			ToolWidth: wall.ToolWidth,
			Clearance: wall.Clearance,
		},
		Obstacles: make([]domain.Obstacle, 0, len(obstacles)),
		Waypoints: make([]domain.Waypoint, 0, len(waypoints)),
		Metrics:   metrics,
		Warning:   warning,
		CreatedAt: time.Unix(createdAtUnix, 0).UTC(),
	}
	for _, o := range obstacles {
		t.Obstacles = append(t.Obstacles, domain.Obstacle{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	for _, wp := range waypoints {
		t.Waypoints = append(t.Waypoints, domain.Waypoint{X: wp.X, Y: wp.Y, Painting: wp.Painting})
	}

	return t, nil
}
