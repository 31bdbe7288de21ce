package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"taktapp/planner/internal/errs"
	"taktapp/planner/internal/metrics"
)

const (
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Queryer is satisfied by both *sqlx.DB and *sqlx.Tx, so repositories run
// unchanged inside or outside a transaction.
type Queryer interface {
	sqlx.ExtContext
}

// IsBusy reports whether err is SQLite's transient locked/busy condition.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

// WithTx runs fn inside one transaction with commit-or-rollback on every exit
// path. A busy store is retried with bounded exponential backoff; once the
// attempts are exhausted the conflict surfaces as errs.ErrStoreBusy so the
// caller can retry instead of losing the write.
func WithTx(ctx context.Context, sdb *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	started := time.Now()
	delay := busyRetryInitialBackoff
	var lastErr error

	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = runTx(ctx, sdb, fn)
		if lastErr == nil {
			observeTx("success", started)
			return nil
		}
		if !IsBusy(lastErr) {
			observeTx("error", started)
			return lastErr
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			observeTx("error", started)
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}

	observeTx("busy", started)
	return fmt.Errorf("%w: %v", errs.ErrStoreBusy, lastErr)
}

func observeTx(outcome string, started time.Time) {
	reg := metrics.NewMetricsRegistry()
	reg.StoreTxTotal.WithLabelValues(outcome).Inc()
	reg.StoreTxDuration.Observe(time.Since(started).Seconds())
}

func runTx(ctx context.Context, sdb *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := sdb.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
