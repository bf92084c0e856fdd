package ports

import (
	"context"

	"evacplanner/internal/domain/grid"
)

type HazardAPI interface {
	AddHazard(ctx context.Context, buildingID int, h grid.Hazard) error
	RemoveHazard(ctx context.Context, buildingID int, pos grid.Point) error
	ClearHazards(ctx context.Context, buildingID int) error
}

type PathRequest struct {
	BuildingID int
	Start      grid.Point
	End        grid.Point
	Name       string
}

type PathResult struct {
	Path   grid.Path
	Steps  int
	Cost   float64
	PathID int
}

type PathAPI interface {
	ComputePath(ctx context.Context, req PathRequest) (PathResult, error)
}

type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type HealthChecker interface {
	Health(ctx context.Context) (HealthStatus, error)
}

type HazardOpKind string

const (
	HazardOpAdd    HazardOpKind = "add"
	HazardOpRemove HazardOpKind = "remove"
	HazardOpClear  HazardOpKind = "clear"
)

// HazardOp is one best-effort mirror of a local hazard mutation.
// Hazard is zero for clear.
type HazardOp struct {
	Kind       HazardOpKind
	BuildingID int
	Hazard     grid.Hazard
}

// HazardReplicator accepts ops without blocking the caller.
type HazardReplicator interface {
	Submit(op HazardOp)
}
