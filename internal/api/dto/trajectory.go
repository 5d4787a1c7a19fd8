package dto

import "time"

type WallResponse struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	ToolWidth float64 `json:"tool_width"`
	Clearance float64 `json:"clearance"`
}

type ObstacleResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type WaypointResponse struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Painting bool    `json:"painting"`
}

type TrajectoryResponse struct {
	ID                   int64              `json:"id"`
	Wall                 WallResponse       `json:"wall"`
	Obstacles            []ObstacleResponse `json:"obstacles"`
	Waypoints            []WaypointResponse `json:"waypoints"`
	CoverageArea         float64            `json:"coverage_area"`
	PathLength           float64            `json:"path_length"`
	Efficiency           float64            `json:"efficiency"`
	EstimatedTimeSeconds float64            `json:"estimated_time_seconds"`
	TotalPoints          int                `json:"total_points"`
	Warning              string             `json:"warning,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
}

type ListTrajectoriesResponse struct {
	Trajectories []TrajectoryResponse `json:"trajectories"`
}

// TrajectoryMetricsResponse is the detailed report of GET /trajectories/{id}/metrics.
type TrajectoryMetricsResponse struct {
	TrajectoryID         int64   `json:"trajectory_id"`
	TotalWallArea        float64 `json:"total_wall_area"`
	ObstacleArea         float64 `json:"obstacle_area"`
	AvailableArea        float64 `json:"available_area"`
	CoverageArea         float64 `json:"coverage_area"`
	CoveragePercentage   float64 `json:"coverage_percentage"`
	PathLength           float64 `json:"path_length"`
	PathDensity          float64 `json:"path_density"`
	Efficiency           float64 `json:"efficiency"`
	ToolWidth            float64 `json:"tool_width"`
	EstimatedTimeSeconds float64 `json:"estimated_time_seconds"`
}
