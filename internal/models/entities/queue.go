package entities

// QueueEntry joins a waiting vehicle to its 0-based FIFO position. Positions
// are rewritten transactionally on every mutation so they always form the
// contiguous range [0, len).
type QueueEntry struct {
	EntryID   int64   `db:"entry_id"`
	Position  int     `db:"position"`
	VehicleID int64   `db:"vehicle_id"`
	Name      string  `db:"name"`
	Hours     float64 `db:"hours"`
	Employees int     `db:"employees"`
}
