package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/db"
	"taktapp/planner/internal/models/entities"
)

// HistoryRepo accesses the append-only completion ledger. The engine only
// ever inserts and prunes oldest-first; entries are never updated.
type HistoryRepo struct {
	q db.Queryer
}

func NewHistoryRepo(q db.Queryer) *HistoryRepo {
	return &HistoryRepo{q: q}
}

func (r *HistoryRepo) Insert(ctx context.Context, entry entities.HistoryEntry) error {
	_, err := r.q.ExecContext(ctx, constants.InsertHistoryEntry,
		entry.VehicleName,
		entry.Hours,
		entry.Employees,
		entry.FinishedAt,
		entry.Station,
		entry.BandEmployees,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// ListPage returns entries ordered most-recent-first, ties broken by
// insertion order.
func (r *HistoryRepo) ListPage(ctx context.Context, limit, offset int) ([]entities.HistoryEntry, error) {
	var entries []entities.HistoryEntry
	if err := sqlx.SelectContext(ctx, r.q, &entries, constants.SelectHistoryPage, limit, offset); err != nil {
		return nil, fmt.Errorf("select history page: %w", err)
	}
	return entries, nil
}

func (r *HistoryRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, constants.CountHistoryEntries); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return count, nil
}

// Trim deletes the oldest entries until at most max remain.
func (r *HistoryRepo) Trim(ctx context.Context, max int) error {
	count, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if count <= max {
		return nil
	}
	if _, err := r.q.ExecContext(ctx, constants.TrimHistoryEntries, count-max); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}
