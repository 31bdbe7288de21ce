// Package testsupport provides shared test fixtures.
package testsupport

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"taktapp/planner/internal/db"
	"taktapp/planner/migrator/sqlite"
)

// NewDB creates a migrated, default-seeded in-memory SQLite database. Each
// call gets its own database; it is closed when the test ends.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_foreign_keys=on&_busy_timeout=5000",
		uuid.NewString(),
	)
	sdb, err := sqlx.Open("sqlite3", dsn)
	require.NoError(t, err, "Failed to create test database")
	sdb.SetMaxOpenConns(1)

	err = sqlite.Migrate(sdb.DB)
	require.NoError(t, err, "Failed to run migrations on test database")

	err = db.EnsureDefaults(context.Background(), sdb, "")
	require.NoError(t, err, "Failed to seed defaults")

	t.Cleanup(func() {
		require.NoError(t, sdb.Close(), "Failed to close test database")
	})

	return sdb
}
