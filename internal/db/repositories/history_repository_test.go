package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taktapp/planner/internal/db/repositories"
	"taktapp/planner/internal/models/entities"
	"taktapp/planner/internal/testsupport"
)

func insertHistory(t *testing.T, repo *repositories.HistoryRepo, name string, finishedAt time.Time) {
	t.Helper()
	err := repo.Insert(context.Background(), entities.HistoryEntry{
		VehicleName:   name,
		Hours:         4,
		Employees:     1,
		FinishedAt:    finishedAt,
		Station:       10,
		BandEmployees: 2,
	})
	require.NoError(t, err)
}

func TestHistoryRepo_ListPageOrdering(t *testing.T) {
	sdb := testsupport.NewDB(t)
	repo := repositories.NewHistoryRepo(sdb)
	ctx := context.Background()

	base := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	insertHistory(t, repo, "t1", base)
	insertHistory(t, repo, "t2", base.Add(time.Hour))
	insertHistory(t, repo, "t3", base.Add(2*time.Hour))

	entries, err := repo.ListPage(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "t3", entries[0].VehicleName)
	assert.Equal(t, "t2", entries[1].VehicleName)

	// offset skips exactly the entries the first page returned
	entries, err = repo.ListPage(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t1", entries[0].VehicleName)
}

func TestHistoryRepo_TieBreakOnInsertionOrder(t *testing.T) {
	sdb := testsupport.NewDB(t)
	repo := repositories.NewHistoryRepo(sdb)
	ctx := context.Background()

	at := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	insertHistory(t, repo, "earlier-insert", at)
	insertHistory(t, repo, "later-insert", at)

	entries, err := repo.ListPage(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "later-insert", entries[0].VehicleName)
	assert.Equal(t, "earlier-insert", entries[1].VehicleName)
}

func TestHistoryRepo_TrimDropsOldestFirst(t *testing.T) {
	sdb := testsupport.NewDB(t)
	repo := repositories.NewHistoryRepo(sdb)
	ctx := context.Background()

	base := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		insertHistory(t, repo, "entry", base.Add(time.Duration(i)*time.Minute))
	}

	require.NoError(t, repo.Trim(ctx, 3))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	entries, err := repo.ListPage(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// the two oldest are gone
	assert.Equal(t, base.Add(2*time.Minute).Unix(), entries[2].FinishedAt.Unix())
}

func TestHistoryRepo_TrimNoopUnderLimit(t *testing.T) {
	sdb := testsupport.NewDB(t)
	repo := repositories.NewHistoryRepo(sdb)
	ctx := context.Background()

	insertHistory(t, repo, "only", time.Now().UTC())

	require.NoError(t, repo.Trim(ctx, 3))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
