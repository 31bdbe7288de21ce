package db_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taktapp/planner/internal/db"
	"taktapp/planner/internal/errs"
	"taktapp/planner/internal/testsupport"

	"github.com/jmoiron/sqlx"
)

func TestWithTx_Commit(t *testing.T) {
	sdb := testsupport.NewDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, sdb, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO vehicles (name, hours, employees, created_at) VALUES ('tx-test', 1, 1, CURRENT_TIMESTAMP)")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, sdb.Get(&count, "SELECT COUNT(1) FROM vehicles WHERE name = 'tx-test'"))
	assert.Equal(t, 1, count)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	sdb := testsupport.NewDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := db.WithTx(ctx, sdb, func(tx *sqlx.Tx) error {
		_, execErr := tx.ExecContext(ctx,
			"INSERT INTO vehicles (name, hours, employees, created_at) VALUES ('rolled-back', 1, 1, CURRENT_TIMESTAMP)")
		require.NoError(t, execErr)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, sdb.Get(&count, "SELECT COUNT(1) FROM vehicles WHERE name = 'rolled-back'"))
	assert.Equal(t, 0, count, "rolled back insert must not be visible")
}

func TestWithTx_BusySurfacesAsStoreBusy(t *testing.T) {
	sdb := testsupport.NewDB(t)
	ctx := context.Background()

	attempts := 0
	err := db.WithTx(ctx, sdb, func(tx *sqlx.Tx) error {
		attempts++
		return sqlite3.Error{Code: sqlite3.ErrBusy}
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStoreBusy)
	assert.Greater(t, attempts, 1, "busy transactions are retried before surfacing")
}

func TestIsBusy(t *testing.T) {
	assert.False(t, db.IsBusy(nil))
	assert.False(t, db.IsBusy(errors.New("some other failure")))
	assert.True(t, db.IsBusy(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.True(t, db.IsBusy(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.True(t, db.IsBusy(fmt.Errorf("wrap: %w", sqlite3.Error{Code: sqlite3.ErrBusy})))
	assert.True(t, db.IsBusy(errors.New("database is locked")))
}

func TestEnsureDefaults_Idempotent(t *testing.T) {
	sdb := testsupport.NewDB(t)
	ctx := context.Background()

	// NewDB already seeded once; a second pass must not duplicate rows
	require.NoError(t, db.EnsureDefaults(ctx, sdb, ""))

	var slots, settings, breaks int
	require.NoError(t, sdb.Get(&slots, "SELECT COUNT(1) FROM band_slots"))
	require.NoError(t, sdb.Get(&settings, "SELECT COUNT(1) FROM settings"))
	require.NoError(t, sdb.Get(&breaks, "SELECT COUNT(1) FROM break_periods"))
	assert.Equal(t, 10, slots)
	assert.Equal(t, 1, settings)
	assert.Equal(t, 2, breaks)
}
