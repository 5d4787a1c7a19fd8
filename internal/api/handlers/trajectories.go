package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"wall-coverage-service/internal/api/dto"
	"wall-coverage-service/internal/domain"
	"wall-coverage-service/internal/ports"
	"wall-coverage-service/internal/services"
)

// Defaults applied when a plan request omits tool parameters.
const (
	defaultToolWidth = 0.2
	defaultClearance = 0.05
)

// TrajectoryHandler exposes trajectory planning and retrieval endpoints.
type TrajectoryHandler struct {
	Repo ports.TrajectoryRepository
	// ToolSpeed in metres per second, resolved at the composition root.
	ToolSpeed float64
}

// Collection dispatches /trajectories: POST plans and stores a new
// trajectory, GET lists all stored ones.
func (h *TrajectoryHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// create plans a coverage trajectory and persists the result.
// Validation failures surface as 400 with the offending value named;
// infeasible-but-valid geometry still returns 201 with a warning attached.
func (h *TrajectoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanTrajectoryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	toolWidth := req.ToolWidth
	if toolWidth == 0 {
		toolWidth = defaultToolWidth
	}

	clearance := defaultClearance
	if req.Clearance != nil {
		clearance = *req.Clearance
	}

	obstacles := make([]domain.Obstacle, 0, len(req.Obstacles))
	for _, o := range req.Obstacles {
		obstacles = append(obstacles, domain.Obstacle{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}

	planReq := services.PlanRequest{
		Wall: domain.WallSpec{
			Width:     req.WallWidth,
			Height:    req.WallHeight,
			ToolWidth: toolWidth,
			Clearance: clearance,
		},
		Obstacles: obstacles,
		ToolSpeed: h.ToolSpeed,
	}

	trajectory, err := services.PlanCoverage(planReq)
	if err != nil {
		if services.IsValidationError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan coverage failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.Repo.Save(r.Context(), trajectory); err != nil {
		log.Printf("save trajectory failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toTrajectoryResponse(trajectory))
}

func (h *TrajectoryHandler) list(w http.ResponseWriter, r *http.Request) {
	trajectories, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("list trajectories failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTrajectoriesResponse{
		Trajectories: make([]dto.TrajectoryResponse, 0, len(trajectories)),
	}
	for _, t := range trajectories {
		res.Trajectories = append(res.Trajectories, toTrajectoryResponse(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// ByID serves GET /trajectories/{id}.
func (h *TrajectoryHandler) ByID(w http.ResponseWriter, r *http.Request) {
	t, ok := h.fetch(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, toTrajectoryResponse(t))
}

// MetricsByID serves GET /trajectories/{id}/metrics with the detailed
// coverage report derived from the stored trajectory.
func (h *TrajectoryHandler) MetricsByID(w http.ResponseWriter, r *http.Request) {
	t, ok := h.fetch(w, r)
	if !ok {
		return
	}

	wallArea := t.Wall.Area()
	obstacleArea := 0.0
	for _, o := range t.Obstacles {
		obstacleArea += o.Area()
	}
	availableArea := wallArea - obstacleArea

	coveragePct := 0.0
	if availableArea > 0 {
		coveragePct = t.Metrics.CoverageArea / availableArea * 100
	}
	pathDensity := 0.0
	if wallArea > 0 {
		pathDensity = t.Metrics.PathLength / wallArea
	}

	writeJSON(w, r, http.StatusOK, dto.TrajectoryMetricsResponse{
		TrajectoryID:         t.ID,
		TotalWallArea:        wallArea,
		ObstacleArea:         obstacleArea,
		AvailableArea:        availableArea,
		CoverageArea:         t.Metrics.CoverageArea,
		CoveragePercentage:   coveragePct,
		PathLength:           t.Metrics.PathLength,
		PathDensity:          pathDensity,
		Efficiency:           t.Metrics.Efficiency,
		ToolWidth:            t.Wall.ToolWidth,
		EstimatedTimeSeconds: t.Metrics.EstimatedTimeSeconds,
	})
}

// fetch resolves the {id} path value and loads the trajectory, writing the
// error response itself when it returns ok=false.
func (h *TrajectoryHandler) fetch(w http.ResponseWriter, r *http.Request) (*domain.Trajectory, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return nil, false
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, r, http.StatusBadRequest, "invalid trajectory id")
		return nil, false
	}

	t, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrTrajectoryNotFound) {
			writeError(w, r, http.StatusNotFound, "trajectory not found")
			return nil, false
		}
		log.Printf("get trajectory failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	return t, true
}

func toTrajectoryResponse(t *domain.Trajectory) dto.TrajectoryResponse {
	obstacles := make([]dto.ObstacleResponse, 0, len(t.Obstacles))
	for _, o := range t.Obstacles {
		obstacles = append(obstacles, dto.ObstacleResponse{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}

	waypoints := make([]dto.WaypointResponse, 0, len(t.Waypoints))
	for _, wp := range t.Waypoints {
		waypoints = append(waypoints, dto.WaypointResponse{X: wp.X, Y: wp.Y, Painting: wp.Painting})
	}

	return dto.TrajectoryResponse{
		ID: t.ID,
		Wall: dto.WallResponse{
			Width:     t.Wall.Width,
			Height:    t.Wall.Height,
			ToolWidth: t.Wall.ToolWidth,
			Clearance: t.Wall.Clearance,
		},
		Obstacles:            obstacles,
		Waypoints:            waypoints,
		CoverageArea:         t.Metrics.CoverageArea,
		PathLength:           t.Metrics.PathLength,
		Efficiency:           t.Metrics.Efficiency,
		EstimatedTimeSeconds: t.Metrics.EstimatedTimeSeconds,
		TotalPoints:          len(t.Waypoints),
		Warning:              t.Warning,
		CreatedAt:            t.CreatedAt,
	}
}
