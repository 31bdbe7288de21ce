package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taktapp/planner/internal/errs"
	"taktapp/planner/internal/models/dtos"
	"taktapp/planner/internal/services"
	"taktapp/planner/internal/testsupport"
)

func validConfig() dtos.ConfigUpdateRequest {
	return dtos.ConfigUpdateRequest{
		Window: dtos.WindowPayload{Start: "07:00", End: "15:30", Days: []int{1, 2, 3, 4}},
		Breaks: []dtos.BreakPayload{
			{Start: "09:00", End: "09:15"},
		},
		FreeDays:  []string{"2026-12-24"},
		Employees: 2,
	}
}

func TestConfigService_GetDefaults(t *testing.T) {
	sdb := testsupport.NewDB(t)
	svc := services.NewConfigService(sdb)

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "06:30", cfg.Window.Start)
	assert.Equal(t, "16:15", cfg.Window.End)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.Window.Days)
	assert.Equal(t, 1, cfg.Employees)
	require.Len(t, cfg.Breaks, 2)
	assert.Empty(t, cfg.FreeDays)
}

func TestConfigService_ReplaceRoundtrip(t *testing.T) {
	sdb := testsupport.NewDB(t)
	svc := services.NewConfigService(sdb)
	ctx := context.Background()

	cfg, err := svc.Replace(ctx, validConfig())
	require.NoError(t, err)

	assert.Equal(t, "07:00", cfg.Window.Start)
	assert.Equal(t, "15:30", cfg.Window.End)
	assert.Equal(t, []int{1, 2, 3, 4}, cfg.Window.Days)
	assert.Equal(t, 2, cfg.Employees)
	require.Len(t, cfg.Breaks, 1)
	assert.Equal(t, "09:00", cfg.Breaks[0].Start)
	assert.Equal(t, []string{"2026-12-24"}, cfg.FreeDays)

	// a later Get serves exactly what Replace returned
	again, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestConfigService_ReplaceValidation(t *testing.T) {
	sdb := testsupport.NewDB(t)
	svc := services.NewConfigService(sdb)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dtos.ConfigUpdateRequest)
	}{
		{"bad window start", func(r *dtos.ConfigUpdateRequest) { r.Window.Start = "25:00" }},
		{"bad window end", func(r *dtos.ConfigUpdateRequest) { r.Window.End = "7:5" }},
		{"day out of range", func(r *dtos.ConfigUpdateRequest) { r.Window.Days = []int{1, 7} }},
		{"break start after end", func(r *dtos.ConfigUpdateRequest) {
			r.Breaks = []dtos.BreakPayload{{Start: "12:00", End: "11:00"}}
		}},
		{"bad break time", func(r *dtos.ConfigUpdateRequest) {
			r.Breaks = []dtos.BreakPayload{{Start: "noon", End: "12:30"}}
		}},
		{"bad free day", func(r *dtos.ConfigUpdateRequest) { r.FreeDays = []string{"24.12.2026"} }},
		{"zero employees", func(r *dtos.ConfigUpdateRequest) { r.Employees = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validConfig()
			tc.mutate(&req)
			_, err := svc.Replace(ctx, req)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}

	// the stored config is still the seeded default after every rejection
	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "06:30", cfg.Window.Start)
	assert.Equal(t, 1, cfg.Employees)
}

func TestConfigService_PinRotation(t *testing.T) {
	sdb := testsupport.NewDB(t)
	svc := services.NewConfigService(sdb)
	ctx := context.Background()

	pin, err := svc.AdminPin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1412", pin)

	req := validConfig()
	req.AdminPin = "2024"
	_, err = svc.Replace(ctx, req)
	require.NoError(t, err)

	pin, err = svc.AdminPin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024", pin)

	// an empty adminPin on a later replace keeps the rotated credential
	_, err = svc.Replace(ctx, validConfig())
	require.NoError(t, err)

	pin, err = svc.AdminPin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024", pin)
}
