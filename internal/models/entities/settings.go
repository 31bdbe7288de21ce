package entities

// Settings is the single configuration row: staffing level, work window and
// the admin credential. Read and replaced as a whole.
type Settings struct {
	ID          int64  `db:"id"`
	Employees   int    `db:"employees"`
	WindowStart string `db:"window_start"`
	WindowEnd   string `db:"window_end"`
	WorkDays    string `db:"work_days"`
	AdminPin    string `db:"admin_pin"`
}

// BreakPeriod is one break interval, applied on every work day.
type BreakPeriod struct {
	ID        int64  `db:"id"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
}

// Holiday is a calendar date exempted entirely from the work window.
type Holiday struct {
	ID   int64  `db:"id"`
	Date string `db:"date"`
}
