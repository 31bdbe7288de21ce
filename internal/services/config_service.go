package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/db"
	"taktapp/planner/internal/db/repositories"
	"taktapp/planner/internal/models/dtos"
	"taktapp/planner/internal/models/entities"
)

// ConfigService exposes and replaces the single configuration record. The
// calendar fields are stored and served as-is; the engine never evaluates
// them.
type ConfigService struct {
	db *sqlx.DB
}

func NewConfigService(sdb *sqlx.DB) *ConfigService {
	return &ConfigService{db: sdb}
}

func (s *ConfigService) Get(ctx context.Context) (*dtos.ConfigResponse, error) {
	var cfg *dtos.ConfigResponse
	err := db.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var txErr error
		cfg, txErr = configSnapshot(ctx, tx)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Replace overwrites settings, breaks and holidays as a whole; no merge
// semantics. Validation is structural only; breaks need not fall inside the
// window. An empty adminPin keeps the current credential.
func (s *ConfigService) Replace(ctx context.Context, req dtos.ConfigUpdateRequest) (*dtos.ConfigResponse, error) {
	if err := validateConfig(req); err != nil {
		return nil, err
	}

	var cfg *dtos.ConfigResponse
	err := db.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		cfgRepo := repositories.NewConfigRepo(tx)

		settings, err := cfgRepo.GetSettings(ctx)
		if err != nil {
			return err
		}

		pin := settings.AdminPin
		if req.AdminPin != "" {
			pin = req.AdminPin
		}

		err = cfgRepo.ReplaceSettings(ctx, entities.Settings{
			ID:          settings.ID,
			Employees:   req.Employees,
			WindowStart: req.Window.Start,
			WindowEnd:   req.Window.End,
			WorkDays:    formatWorkDays(req.Window.Days),
			AdminPin:    pin,
		})
		if err != nil {
			return err
		}

		breaks := make([]entities.BreakPeriod, 0, len(req.Breaks))
		for _, br := range req.Breaks {
			breaks = append(breaks, entities.BreakPeriod{StartTime: br.Start, EndTime: br.End})
		}
		if err := cfgRepo.ReplaceBreaks(ctx, breaks); err != nil {
			return err
		}
		if err := cfgRepo.ReplaceHolidays(ctx, req.FreeDays); err != nil {
			return err
		}

		cfg, err = configSnapshot(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// AdminPin loads the stored credential for the write gate.
func (s *ConfigService) AdminPin(ctx context.Context) (string, error) {
	settings, err := repositories.NewConfigRepo(s.db).GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return settings.AdminPin, nil
}

// configSnapshot builds the wire view of the configuration. The admin PIN is
// never serialized out.
func configSnapshot(ctx context.Context, q db.Queryer) (*dtos.ConfigResponse, error) {
	cfgRepo := repositories.NewConfigRepo(q)

	settings, err := cfgRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	breaks, err := cfgRepo.GetBreaks(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := cfgRepo.GetHolidays(ctx)
	if err != nil {
		return nil, err
	}

	breakViews := make([]dtos.BreakView, 0, len(breaks))
	for _, br := range breaks {
		breakViews = append(breakViews, dtos.BreakView{ID: br.ID, Start: br.StartTime, End: br.EndTime})
	}
	freeDays := make([]string, 0, len(holidays))
	for _, h := range holidays {
		freeDays = append(freeDays, h.Date)
	}

	return &dtos.ConfigResponse{
		Window: dtos.WindowPayload{
			Start: settings.WindowStart,
			End:   settings.WindowEnd,
			Days:  parseWorkDays(settings.WorkDays),
		},
		Breaks:    breakViews,
		FreeDays:  freeDays,
		Employees: settings.Employees,
	}, nil
}

// parseWorkDays splits the stored CSV day list into weekday indices.
func parseWorkDays(raw string) []int {
	if strings.TrimSpace(raw) == "" {
		return []int{}
	}
	parts := strings.Split(raw, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	return days
}

func formatWorkDays(days []int) string {
	parts := make([]string, 0, len(days))
	for _, day := range days {
		parts = append(parts, strconv.Itoa(day))
	}
	return strings.Join(parts, ",")
}
