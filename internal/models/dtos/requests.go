package dtos

// VehiclePayload is a vehicle descriptor supplied on intake. Hours defaults
// to 0 and employees to 1 when omitted.
type VehiclePayload struct {
	Name      string  `json:"name"`
	Hours     float64 `json:"hours"`
	Employees *int    `json:"employees"`
}

// SlotPayload describes one band station in a plan replacement. A nil vehicle
// leaves the station empty.
type SlotPayload struct {
	Station int             `json:"station,omitempty"`
	Vehicle *VehiclePayload `json:"vehicle"`
}

// PlanReplaceRequest is a full overwrite of band and queue. The band must
// contain exactly 10 elements; queue positions derive from list order.
type PlanReplaceRequest struct {
	Band      []SlotPayload    `json:"band"`
	Queue     []VehiclePayload `json:"queue"`
	Employees *int             `json:"employees,omitempty"`
}

type QueueAddRequest struct {
	Vehicle VehiclePayload `json:"vehicle"`
}

type WindowPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  []int  `json:"days"`
}

type BreakPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ConfigUpdateRequest fully replaces the stored configuration. An empty
// adminPin keeps the current credential.
type ConfigUpdateRequest struct {
	Window    WindowPayload  `json:"window"`
	Breaks    []BreakPayload `json:"breaks"`
	FreeDays  []string       `json:"freeDays"`
	Employees int            `json:"employees"`
	AdminPin  string         `json:"adminPin,omitempty"`
}
