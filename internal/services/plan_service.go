package services

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/db"
	"taktapp/planner/internal/db/repositories"
	"taktapp/planner/internal/errs"
	"taktapp/planner/internal/metrics"
	"taktapp/planner/internal/models/dtos"
)

// PlanService exposes the combined Band + Queue view and is the only place an
// external caller can bulk-overwrite it.
type PlanService struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewPlanService(sdb *sqlx.DB, reg *metrics.MetricsRegistry) *PlanService {
	return &PlanService{db: sdb, metrics: reg}
}

// Get assembles a consistent snapshot across band, queue and settings in one
// read transaction. Repeated reads with no intervening write are identical.
func (s *PlanService) Get(ctx context.Context) (*dtos.PlanResponse, error) {
	var plan *dtos.PlanResponse
	err := db.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var txErr error
		plan, txErr = planSnapshot(ctx, tx)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Replace atomically overwrites every band slot and queue entry. Vehicles no
// longer referenced are orphaned, not deleted; they stay retrievable by id.
func (s *PlanService) Replace(ctx context.Context, req dtos.PlanReplaceRequest) (*dtos.PlanResponse, error) {
	if len(req.Band) != constants.BandStations {
		return nil, errs.NewValidation("band", constants.MsgBandLength)
	}
	if req.Employees != nil && *req.Employees < 1 {
		return nil, errs.NewValidation("employees", "employees must be at least 1")
	}

	var plan *dtos.PlanResponse
	err := db.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		planRepo := repositories.NewPlanRepo(tx)

		for i, slot := range req.Band {
			station := i + 1
			if slot.Vehicle == nil {
				if err := planRepo.SetSlot(ctx, station, nil); err != nil {
					return err
				}
				continue
			}
			name, hours, employees, err := normalizeVehicle(fmt.Sprintf("band[%d].vehicle", i), *slot.Vehicle)
			if err != nil {
				return err
			}
			vehicleID, err := planRepo.InsertVehicle(ctx, name, hours, employees)
			if err != nil {
				return err
			}
			if err := planRepo.SetSlot(ctx, station, &vehicleID); err != nil {
				return err
			}
		}

		if err := planRepo.ClearQueue(ctx); err != nil {
			return err
		}
		for i, payload := range req.Queue {
			name, hours, employees, err := normalizeVehicle(fmt.Sprintf("queue[%d]", i), payload)
			if err != nil {
				return err
			}
			vehicleID, err := planRepo.InsertVehicle(ctx, name, hours, employees)
			if err != nil {
				return err
			}
			if err := planRepo.AppendQueueEntry(ctx, i, vehicleID); err != nil {
				return err
			}
		}

		if req.Employees != nil {
			cfgRepo := repositories.NewConfigRepo(tx)
			settings, err := cfgRepo.GetSettings(ctx)
			if err != nil {
				return err
			}
			if err := cfgRepo.UpdateEmployees(ctx, settings.ID, *req.Employees); err != nil {
				return err
			}
		}

		var txErr error
		plan, txErr = planSnapshot(ctx, tx)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	observePlan(s.metrics, plan)
	return plan, nil
}

// GetVehicle returns a vehicle record by id, including orphans retained
// after a plan replacement.
func (s *PlanService) GetVehicle(ctx context.Context, id int64) (*dtos.VehicleView, error) {
	v, err := repositories.NewPlanRepo(s.db).GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dtos.VehicleView{ID: v.ID, Name: v.Name, Hours: v.Hours, Employees: v.Employees}, nil
}

// planSnapshot builds the wire view of band, queue and staffing level using
// the given transaction or pool.
func planSnapshot(ctx context.Context, q db.Queryer) (*dtos.PlanResponse, error) {
	planRepo := repositories.NewPlanRepo(q)
	cfgRepo := repositories.NewConfigRepo(q)

	slots, err := planRepo.GetBand(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := planRepo.GetQueue(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := cfgRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	band := make([]dtos.SlotView, 0, len(slots))
	for _, slot := range slots {
		view := dtos.SlotView{Station: slot.Station}
		if slot.Occupied() {
			view.Vehicle = &dtos.VehicleView{
				ID:        *slot.VehicleID,
				Name:      derefString(slot.Name),
				Hours:     derefFloat(slot.Hours),
				Employees: derefInt(slot.Employees),
			}
		}
		band = append(band, view)
	}

	queue := make([]dtos.VehicleView, 0, len(entries))
	for _, entry := range entries {
		queue = append(queue, dtos.VehicleView{
			ID:        entry.VehicleID,
			Name:      entry.Name,
			Hours:     entry.Hours,
			Employees: entry.Employees,
		})
	}

	return &dtos.PlanResponse{Band: band, Queue: queue, Employees: settings.Employees}, nil
}

func observePlan(reg *metrics.MetricsRegistry, plan *dtos.PlanResponse) {
	if reg == nil || plan == nil {
		return
	}
	occupied := 0
	for _, slot := range plan.Band {
		if slot.Vehicle != nil {
			occupied++
		}
	}
	reg.BandOccupancy.Set(float64(occupied))
	reg.QueueLength.Set(float64(len(plan.Queue)))
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
