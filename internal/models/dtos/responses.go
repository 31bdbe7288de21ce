package dtos

import "time"

type VehicleView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Hours     float64 `json:"hours"`
	Employees int     `json:"employees"`
}

type SlotView struct {
	Station int          `json:"station"`
	Vehicle *VehicleView `json:"vehicle"`
}

// PlanResponse is the combined Band + Queue view returned by plan reads,
// plan replacements and band advances.
type PlanResponse struct {
	Band      []SlotView    `json:"band"`
	Queue     []VehicleView `json:"queue"`
	Employees int           `json:"employees"`
}

type QueueResponse struct {
	Queue []VehicleView `json:"queue"`
}

type BreakView struct {
	ID    int64  `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type ConfigResponse struct {
	Window    WindowPayload `json:"window"`
	Breaks    []BreakView   `json:"breaks"`
	FreeDays  []string      `json:"freeDays"`
	Employees int           `json:"employees"`
}

type HistoryEntryView struct {
	ID            int64     `json:"id"`
	VehicleName   string    `json:"vehicle_name"`
	Hours         float64   `json:"hours"`
	Employees     int       `json:"employees"`
	BandEmployees int       `json:"band_employees"`
	FinishedAt    time.Time `json:"finished_at"`
	Station       int       `json:"station"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
