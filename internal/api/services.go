package api

import (
	"context"

	"taktapp/planner/internal/models/dtos"
)

// Handler-facing service contracts. Handlers depend on these so tests can
// substitute mocks.

type PlanService interface {
	Get(ctx context.Context) (*dtos.PlanResponse, error)
	Replace(ctx context.Context, req dtos.PlanReplaceRequest) (*dtos.PlanResponse, error)
	GetVehicle(ctx context.Context, id int64) (*dtos.VehicleView, error)
}

type BandService interface {
	Advance(ctx context.Context) (*dtos.PlanResponse, error)
}

type QueueService interface {
	Add(ctx context.Context, payload dtos.VehiclePayload) ([]dtos.VehicleView, error)
}

type ConfigService interface {
	Get(ctx context.Context) (*dtos.ConfigResponse, error)
	Replace(ctx context.Context, req dtos.ConfigUpdateRequest) (*dtos.ConfigResponse, error)
}

type HistoryService interface {
	List(ctx context.Context, limit, offset int) ([]dtos.HistoryEntryView, error)
	ExportAll(ctx context.Context) ([]dtos.HistoryEntryView, error)
}
