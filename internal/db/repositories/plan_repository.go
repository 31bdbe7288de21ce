package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/db"
	"taktapp/planner/internal/errs"
	"taktapp/planner/internal/models/entities"
)

// PlanRepo accesses the vehicles, band_slots and queue_entries tables. It is
// bound to a db.Queryer so the same methods run against the pool or inside a
// transaction.
type PlanRepo struct {
	q db.Queryer
}

func NewPlanRepo(q db.Queryer) *PlanRepo {
	return &PlanRepo{q: q}
}

// GetBand returns the 10 station rows in order, vehicle attributes joined in.
func (r *PlanRepo) GetBand(ctx context.Context) ([]entities.BandSlot, error) {
	var slots []entities.BandSlot
	if err := sqlx.SelectContext(ctx, r.q, &slots, constants.SelectBand); err != nil {
		return nil, fmt.Errorf("select band: %w", err)
	}
	return slots, nil
}

// GetQueue returns the waiting vehicles in FIFO order.
func (r *PlanRepo) GetQueue(ctx context.Context) ([]entities.QueueEntry, error) {
	var entries []entities.QueueEntry
	if err := sqlx.SelectContext(ctx, r.q, &entries, constants.SelectQueue); err != nil {
		return nil, fmt.Errorf("select queue: %w", err)
	}
	return entries, nil
}

// InsertVehicle creates an immutable vehicle record and returns its id.
func (r *PlanRepo) InsertVehicle(ctx context.Context, name string, hours float64, employees int) (int64, error) {
	res, err := r.q.ExecContext(ctx, constants.InsertVehicle, name, hours, employees, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert vehicle: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("vehicle insert id: %w", err)
	}
	return id, nil
}

// GetVehicle fetches a vehicle by id. Orphaned vehicles stay retrievable
// after a plan replacement.
func (r *PlanRepo) GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error) {
	var v entities.Vehicle
	err := sqlx.GetContext(ctx, r.q, &v, constants.SelectVehicleByID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewNotFound("vehicle", id)
	}
	if err != nil {
		return nil, fmt.Errorf("select vehicle: %w", err)
	}
	return &v, nil
}

// SetSlot points a station at a vehicle, or empties it with a nil id. The
// slot rows are fixed; an unknown station updates nothing and is reported as
// not found.
func (r *PlanRepo) SetSlot(ctx context.Context, station int, vehicleID *int64) error {
	res, err := r.q.ExecContext(ctx, constants.UpdateBandSlot, vehicleID, station)
	if err != nil {
		return fmt.Errorf("update band slot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("band slot rows affected: %w", err)
	}
	if affected == 0 {
		return errs.NewNotFound("station", station)
	}
	return nil
}

// ClearQueue removes every queue entry.
func (r *PlanRepo) ClearQueue(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, constants.DeleteQueueEntries); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}
	return nil
}

// AppendQueueEntry inserts a vehicle at the given 0-based position.
func (r *PlanRepo) AppendQueueEntry(ctx context.Context, position int, vehicleID int64) error {
	if _, err := r.q.ExecContext(ctx, constants.InsertQueueEntry, position, vehicleID); err != nil {
		return fmt.Errorf("insert queue entry: %w", err)
	}
	return nil
}

// QueueLength returns the number of waiting vehicles.
func (r *PlanRepo) QueueLength(ctx context.Context) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, constants.CountQueueEntries); err != nil {
		return 0, fmt.Errorf("count queue: %w", err)
	}
	return count, nil
}

// DequeueHead removes the entry at position 0 and renumbers the remaining
// entries so positions stay the contiguous range [0, len). Returns nil when
// the queue is empty.
func (r *PlanRepo) DequeueHead(ctx context.Context) (*entities.QueueEntry, error) {
	entries, err := r.GetQueue(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	head := entries[0]
	if _, err := r.q.ExecContext(ctx, constants.DeleteQueueEntry, head.EntryID); err != nil {
		return nil, fmt.Errorf("delete queue head: %w", err)
	}

	// ascending order keeps the position UNIQUE constraint satisfied at
	// every intermediate row
	for i, entry := range entries[1:] {
		if _, err := r.q.ExecContext(ctx, constants.UpdateQueuePosition, i, entry.EntryID); err != nil {
			return nil, fmt.Errorf("renumber queue entry: %w", err)
		}
	}

	return &head, nil
}
