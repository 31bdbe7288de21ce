package entities

import "time"

// HistoryEntry is one completed vehicle. Vehicle attributes are stored by
// value so the ledger survives independently of live vehicle records.
type HistoryEntry struct {
	ID            int64     `db:"id"`
	VehicleName   string    `db:"vehicle_name"`
	Hours         float64   `db:"hours"`
	Employees     int       `db:"employees"`
	FinishedAt    time.Time `db:"finished_at"`
	Station       int       `db:"station"`
	BandEmployees int       `db:"band_employees"`
}
