package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/constants"
	"taktapp/planner/internal/db"
	"taktapp/planner/internal/models/entities"
)

// ConfigRepo accesses the settings, break_periods and holidays tables.
// Configuration is a single versionless record replaced as a whole.
type ConfigRepo struct {
	q db.Queryer
}

func NewConfigRepo(q db.Queryer) *ConfigRepo {
	return &ConfigRepo{q: q}
}

func (r *ConfigRepo) GetSettings(ctx context.Context) (*entities.Settings, error) {
	var s entities.Settings
	err := sqlx.GetContext(ctx, r.q, &s, constants.SelectSettings)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("settings row missing: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("select settings: %w", err)
	}
	return &s, nil
}

func (r *ConfigRepo) ReplaceSettings(ctx context.Context, s entities.Settings) error {
	_, err := r.q.ExecContext(ctx, constants.UpdateSettings,
		s.Employees, s.WindowStart, s.WindowEnd, s.WorkDays, s.AdminPin, s.ID)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func (r *ConfigRepo) UpdateEmployees(ctx context.Context, id int64, employees int) error {
	if _, err := r.q.ExecContext(ctx, constants.UpdateSettingsEmployees, employees, id); err != nil {
		return fmt.Errorf("update employees: %w", err)
	}
	return nil
}

func (r *ConfigRepo) GetBreaks(ctx context.Context) ([]entities.BreakPeriod, error) {
	var breaks []entities.BreakPeriod
	if err := sqlx.SelectContext(ctx, r.q, &breaks, constants.SelectBreaks); err != nil {
		return nil, fmt.Errorf("select breaks: %w", err)
	}
	return breaks, nil
}

func (r *ConfigRepo) ReplaceBreaks(ctx context.Context, breaks []entities.BreakPeriod) error {
	if _, err := r.q.ExecContext(ctx, constants.DeleteBreaks); err != nil {
		return fmt.Errorf("delete breaks: %w", err)
	}
	for _, br := range breaks {
		if _, err := r.q.ExecContext(ctx, constants.InsertBreak, br.StartTime, br.EndTime); err != nil {
			return fmt.Errorf("insert break: %w", err)
		}
	}
	return nil
}

func (r *ConfigRepo) GetHolidays(ctx context.Context) ([]entities.Holiday, error) {
	var holidays []entities.Holiday
	if err := sqlx.SelectContext(ctx, r.q, &holidays, constants.SelectHolidays); err != nil {
		return nil, fmt.Errorf("select holidays: %w", err)
	}
	return holidays, nil
}

func (r *ConfigRepo) ReplaceHolidays(ctx context.Context, dates []string) error {
	if _, err := r.q.ExecContext(ctx, constants.DeleteHolidays); err != nil {
		return fmt.Errorf("delete holidays: %w", err)
	}
	for _, date := range dates {
		if _, err := r.q.ExecContext(ctx, constants.InsertHoliday, date); err != nil {
			return fmt.Errorf("insert holiday: %w", err)
		}
	}
	return nil
}
