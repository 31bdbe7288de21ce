package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taktapp/planner/internal/db/repositories"
	"taktapp/planner/internal/errs"
	"taktapp/planner/internal/metrics"
	"taktapp/planner/internal/models/dtos"
	"taktapp/planner/internal/services"
	"taktapp/planner/internal/testsupport"
)

func TestQueueService_AddAppendsAtTail(t *testing.T) {
	sdb := testsupport.NewDB(t)
	svc := services.NewQueueService(sdb, metrics.NewMetricsRegistry())
	ctx := context.Background()

	queue, err := svc.Add(ctx, dtos.VehiclePayload{Name: "Actros 1845", Hours: 16, Employees: intPtr(2)})
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "Actros 1845", queue[0].Name)
	assert.Equal(t, 16.0, queue[0].Hours)
	assert.Equal(t, 2, queue[0].Employees)

	queue, err = svc.Add(ctx, dtos.VehiclePayload{Name: "Arocs 3348"})
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, "Actros 1845", queue[0].Name)
	assert.Equal(t, "Arocs 3348", queue[1].Name)
	assert.Equal(t, 0.0, queue[1].Hours)
	assert.Equal(t, 1, queue[1].Employees)

	entries, err := repositories.NewPlanRepo(sdb).GetQueue(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].Position)
	assert.Equal(t, 1, entries[1].Position)
}

func TestQueueService_AddRejectsInvalidVehicle(t *testing.T) {
	sdb := testsupport.NewDB(t)
	svc := services.NewQueueService(sdb, metrics.NewMetricsRegistry())
	ctx := context.Background()

	cases := []struct {
		name    string
		payload dtos.VehiclePayload
	}{
		{"empty name", dtos.VehiclePayload{Name: "   "}},
		{"negative hours", dtos.VehiclePayload{Name: "ok", Hours: -1}},
		{"zero employees", dtos.VehiclePayload{Name: "ok", Employees: intPtr(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tc.payload)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}

	length, err := repositories.NewPlanRepo(sdb).QueueLength(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, length, "rejected payloads leave the queue untouched")
}
