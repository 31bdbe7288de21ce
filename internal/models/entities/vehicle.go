package entities

import "time"

// Vehicle is created on intake and immutable afterwards. Band slots and queue
// entries reference it by id; history copies its attributes by value.
type Vehicle struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Hours     float64   `db:"hours"`
	Employees int       `db:"employees"`
	CreatedAt time.Time `db:"created_at"`
}
