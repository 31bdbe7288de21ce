package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taktapp/planner/internal/db/repositories"
	"taktapp/planner/internal/models/entities"
	"taktapp/planner/internal/testsupport"
)

func TestConfigRepo_SeededDefaults(t *testing.T) {
	sdb := testsupport.NewDB(t)
	repo := repositories.NewConfigRepo(sdb)
	ctx := context.Background()

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, settings.Employees)
	assert.Equal(t, "06:30", settings.WindowStart)
	assert.Equal(t, "16:15", settings.WindowEnd)
	assert.Equal(t, "1,2,3,4,5", settings.WorkDays)
	assert.Equal(t, "1412", settings.AdminPin)

	breaks, err := repo.GetBreaks(ctx)
	require.NoError(t, err)
	require.Len(t, breaks, 2)
	assert.Equal(t, "09:30", breaks[0].StartTime)
	assert.Equal(t, "12:45", breaks[1].StartTime)

	holidays, err := repo.GetHolidays(ctx)
	require.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestConfigRepo_ReplaceSettings(t *testing.T) {
	sdb := testsupport.NewDB(t)
	repo := repositories.NewConfigRepo(sdb)
	ctx := context.Background()

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)

	err = repo.ReplaceSettings(ctx, entities.Settings{
		ID:          settings.ID,
		Employees:   4,
		WindowStart: "07:00",
		WindowEnd:   "15:30",
		WorkDays:    "0,1,2",
		AdminPin:    "9999",
	})
	require.NoError(t, err)

	updated, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Employees)
	assert.Equal(t, "07:00", updated.WindowStart)
	assert.Equal(t, "9999", updated.AdminPin)
}

func TestConfigRepo_ReplaceBreaksAndHolidays(t *testing.T) {
	sdb := testsupport.NewDB(t)
	repo := repositories.NewConfigRepo(sdb)
	ctx := context.Background()

	err := repo.ReplaceBreaks(ctx, []entities.BreakPeriod{
		{StartTime: "10:00", EndTime: "10:20"},
	})
	require.NoError(t, err)

	breaks, err := repo.GetBreaks(ctx)
	require.NoError(t, err)
	require.Len(t, breaks, 1)
	assert.Equal(t, "10:00", breaks[0].StartTime)

	err = repo.ReplaceHolidays(ctx, []string{"2025-12-24", "2025-12-31"})
	require.NoError(t, err)

	holidays, err := repo.GetHolidays(ctx)
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "2025-12-24", holidays[0].Date)
}
