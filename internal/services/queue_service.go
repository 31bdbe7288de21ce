package services

import (
	"context"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/db"
	"taktapp/planner/internal/db/repositories"
	"taktapp/planner/internal/metrics"
	"taktapp/planner/internal/models/dtos"
)

// QueueService appends vehicles to the tail of the intake queue.
type QueueService struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewQueueService(sdb *sqlx.DB, reg *metrics.MetricsRegistry) *QueueService {
	return &QueueService{db: sdb, metrics: reg}
}

// Add creates the vehicle record and a queue entry at position = current
// length in one transaction, then returns the new queue view.
func (s *QueueService) Add(ctx context.Context, payload dtos.VehiclePayload) ([]dtos.VehicleView, error) {
	name, hours, employees, err := normalizeVehicle("vehicle", payload)
	if err != nil {
		return nil, err
	}

	var queue []dtos.VehicleView
	err = db.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		planRepo := repositories.NewPlanRepo(tx)

		vehicleID, err := planRepo.InsertVehicle(ctx, name, hours, employees)
		if err != nil {
			return err
		}
		length, err := planRepo.QueueLength(ctx)
		if err != nil {
			return err
		}
		if err := planRepo.AppendQueueEntry(ctx, length, vehicleID); err != nil {
			return err
		}

		entries, err := planRepo.GetQueue(ctx)
		if err != nil {
			return err
		}
		queue = make([]dtos.VehicleView, 0, len(entries))
		for _, entry := range entries {
			queue = append(queue, dtos.VehicleView{
				ID:        entry.VehicleID,
				Name:      entry.Name,
				Hours:     entry.Hours,
				Employees: entry.Employees,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.QueueLength.Set(float64(len(queue)))
	}
	return queue, nil
}
