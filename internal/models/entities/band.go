package entities

// BandSlot is one of the 10 fixed stations. The rows for stations 1..10 are
// seeded once and only ever updated, never inserted or deleted.
type BandSlot struct {
	Station   int      `db:"station"`
	VehicleID *int64   `db:"vehicle_id"`
	Name      *string  `db:"name"`
	Hours     *float64 `db:"hours"`
	Employees *int     `db:"employees"`
}

// Occupied reports whether a vehicle is at this station.
func (s BandSlot) Occupied() bool {
	return s.VehicleID != nil
}
