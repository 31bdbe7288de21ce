package services

import (
	"context"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/db/repositories"
	"taktapp/planner/internal/models/dtos"
)

// HistoryService reads the completion ledger. Pure read; ordering stays
// stable under concurrent appends because the key is finished_at descending
// with an insertion-order tie-break.
type HistoryService struct {
	db *sqlx.DB
}

func NewHistoryService(sdb *sqlx.DB) *HistoryService {
	return &HistoryService{db: sdb}
}

// List returns one page, most recent first. limit defaults to 100 and is
// capped at the retention bound; a negative offset reads from the start.
func (s *HistoryService) List(ctx context.Context, limit, offset int) ([]dtos.HistoryEntryView, error) {
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}
	if limit > constants.MaxHistory {
		limit = constants.MaxHistory
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := repositories.NewHistoryRepo(s.db).ListPage(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]dtos.HistoryEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, dtos.HistoryEntryView{
			ID:            entry.ID,
			VehicleName:   entry.VehicleName,
			Hours:         entry.Hours,
			Employees:     entry.Employees,
			BandEmployees: entry.BandEmployees,
			FinishedAt:    entry.FinishedAt,
			Station:       entry.Station,
		})
	}
	return views, nil
}

// ExportAll returns every retained entry for the tabular export.
func (s *HistoryService) ExportAll(ctx context.Context) ([]dtos.HistoryEntryView, error) {
	return s.List(ctx, constants.MaxHistory, 0)
}
