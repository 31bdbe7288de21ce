package services

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/db"
	"taktapp/planner/internal/db/repositories"
	"taktapp/planner/internal/metrics"
	"taktapp/planner/internal/models/dtos"
	"taktapp/planner/internal/models/entities"
)

// BandService owns the advance transition: complete station 10, shift every
// occupied station forward, admit the queue head into station 1.
type BandService struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewBandService(sdb *sqlx.DB, reg *metrics.MetricsRegistry) *BandService {
	return &BandService{db: sdb, metrics: reg}
}

// Advance moves the line forward by one step. The archive, shift and dequeue
// run in a single transaction; a concurrent reader never observes a
// half-applied layout. Advancing an empty band and queue is a valid
// transition, not an error.
func (s *BandService) Advance(ctx context.Context) (*dtos.PlanResponse, error) {
	var (
		plan     *dtos.PlanResponse
		archived bool
	)

	err := db.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		planRepo := repositories.NewPlanRepo(tx)
		historyRepo := repositories.NewHistoryRepo(tx)
		cfgRepo := repositories.NewConfigRepo(tx)

		settings, err := cfgRepo.GetSettings(ctx)
		if err != nil {
			return err
		}
		slots, err := planRepo.GetBand(ctx)
		if err != nil {
			return err
		}

		// station 10 completes into the ledger with the staffing level of
		// the line at completion time
		archived = false
		exit := slots[len(slots)-1]
		if exit.Occupied() {
			err := historyRepo.Insert(ctx, entities.HistoryEntry{
				VehicleName:   derefString(exit.Name),
				Hours:         derefFloat(exit.Hours),
				Employees:     derefInt(exit.Employees),
				FinishedAt:    time.Now().UTC(),
				Station:       exit.Station,
				BandEmployees: settings.Employees,
			})
			if err != nil {
				return err
			}
			archived = true
		}

		// the vehicle at station s moves to station s+1; station 1 is
		// refilled from the queue head, or emptied
		occupants := make(map[int]*int64, constants.BandStations)
		for _, slot := range slots[:len(slots)-1] {
			occupants[slot.Station+1] = slot.VehicleID
		}

		head, err := planRepo.DequeueHead(ctx)
		if err != nil {
			return err
		}
		if head != nil {
			occupants[1] = &head.VehicleID
		} else {
			occupants[1] = nil
		}

		for station := 1; station <= constants.BandStations; station++ {
			if err := planRepo.SetSlot(ctx, station, occupants[station]); err != nil {
				return err
			}
		}

		if err := historyRepo.Trim(ctx, constants.MaxHistory); err != nil {
			return err
		}

		plan, err = planSnapshot(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.AdvancesTotal.Inc()
		if archived {
			s.metrics.VehiclesFinishedTotal.Inc()
		}
	}
	observePlan(s.metrics, plan)

	return plan, nil
}
