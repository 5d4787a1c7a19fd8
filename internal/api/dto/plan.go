package dto

// PlanTrajectoryRequest is the body of POST /trajectories.
// Tool width and clearance fall back to service defaults when omitted.
type PlanTrajectoryRequest struct {
	WallWidth  float64           `json:"wall_width"`
	WallHeight float64           `json:"wall_height"`
	ToolWidth  float64           `json:"tool_width"`
	Clearance  *float64          `json:"clearance"`
	Obstacles  []ObstacleRequest `json:"obstacles"`
}

type ObstacleRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
