package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taktapp/planner/internal/constants"
)

// EnsureDefaults seeds an empty database: the single settings row, the fixed
// band slot rows for stations 1..10 and the default break intervals. Safe to
// call on every start. seedPin overrides the default admin PIN on first
// start only; afterwards the stored row is authoritative.
func EnsureDefaults(ctx context.Context, sdb *sqlx.DB, seedPin string) error {
	return WithTx(ctx, sdb, func(tx *sqlx.Tx) error {
		var settingsCount int
		if err := tx.GetContext(ctx, &settingsCount, "SELECT COUNT(1) FROM settings"); err != nil {
			return fmt.Errorf("count settings: %w", err)
		}
		if settingsCount == 0 {
			pin := seedPin
			if pin == "" {
				pin = constants.DefaultAdminPin
			}
			_, err := tx.ExecContext(ctx,
				"INSERT INTO settings (employees, window_start, window_end, work_days, admin_pin) VALUES (?, ?, ?, ?, ?)",
				constants.DefaultEmployees,
				constants.DefaultWindowStart,
				constants.DefaultWindowEnd,
				constants.DefaultWorkDays,
				pin,
			)
			if err != nil {
				return fmt.Errorf("seed settings: %w", err)
			}
		}

		var breakCount int
		if err := tx.GetContext(ctx, &breakCount, "SELECT COUNT(1) FROM break_periods"); err != nil {
			return fmt.Errorf("count breaks: %w", err)
		}
		if breakCount == 0 {
			for _, br := range constants.DefaultBreaks {
				if _, err := tx.ExecContext(ctx, constants.InsertBreak, br[0], br[1]); err != nil {
					return fmt.Errorf("seed break: %w", err)
				}
			}
		}

		var slotCount int
		if err := tx.GetContext(ctx, &slotCount, "SELECT COUNT(1) FROM band_slots"); err != nil {
			return fmt.Errorf("count band slots: %w", err)
		}
		if slotCount == 0 {
			for station := 1; station <= constants.BandStations; station++ {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO band_slots (station, vehicle_id) VALUES (?, NULL)", station,
				); err != nil {
					return fmt.Errorf("seed band slot %d: %w", station, err)
				}
			}
		}

		return nil
	})
}
