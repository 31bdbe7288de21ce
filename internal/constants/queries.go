package constants

const (
	SelectBand = `
	SELECT bs.station, v.id AS vehicle_id, v.name, v.hours, v.employees
	FROM band_slots bs
	LEFT JOIN vehicles v ON v.id = bs.vehicle_id
	ORDER BY bs.station
	`

	SelectQueue = `
	SELECT qe.id AS entry_id, qe.position, v.id AS vehicle_id, v.name, v.hours, v.employees
	FROM queue_entries qe
	JOIN vehicles v ON v.id = qe.vehicle_id
	ORDER BY qe.position
	`

	InsertVehicle = `
	INSERT INTO vehicles (name, hours, employees, created_at) VALUES (?, ?, ?, ?)
	`

	SelectVehicleByID = `
	SELECT id, name, hours, employees, created_at FROM vehicles WHERE id = ?
	`

	UpdateBandSlot = `
	UPDATE band_slots SET vehicle_id = ? WHERE station = ?
	`

	DeleteQueueEntries = `
	DELETE FROM queue_entries
	`

	InsertQueueEntry = `
	INSERT INTO queue_entries (position, vehicle_id) VALUES (?, ?)
	`

	DeleteQueueEntry = `
	DELETE FROM queue_entries WHERE id = ?
	`

	UpdateQueuePosition = `
	UPDATE queue_entries SET position = ? WHERE id = ?
	`

	CountQueueEntries = `
	SELECT COUNT(1) FROM queue_entries
	`

	InsertHistoryEntry = `
	INSERT INTO history_entries (vehicle_name, hours, employees, finished_at, station, band_employees)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	SelectHistoryPage = `
	SELECT id, vehicle_name, hours, employees, finished_at, station, band_employees
	FROM history_entries
	ORDER BY finished_at DESC, id DESC
	LIMIT ? OFFSET ?
	`

	CountHistoryEntries = `
	SELECT COUNT(1) FROM history_entries
	`

	TrimHistoryEntries = `
	DELETE FROM history_entries WHERE id IN (
		SELECT id FROM history_entries ORDER BY finished_at ASC, id ASC LIMIT ?
	)
	`

	SelectSettings = `
	SELECT id, employees, window_start, window_end, work_days, admin_pin FROM settings LIMIT 1
	`

	UpdateSettings = `
	UPDATE settings SET employees = ?, window_start = ?, window_end = ?, work_days = ?, admin_pin = ?
	WHERE id = ?
	`

	UpdateSettingsEmployees = `
	UPDATE settings SET employees = ? WHERE id = ?
	`

	SelectBreaks = `
	SELECT id, start_time, end_time FROM break_periods ORDER BY start_time
	`

	DeleteBreaks = `
	DELETE FROM break_periods
	`

	InsertBreak = `
	INSERT INTO break_periods (start_time, end_time) VALUES (?, ?)
	`

	SelectHolidays = `
	SELECT id, date FROM holidays ORDER BY date
	`

	DeleteHolidays = `
	DELETE FROM holidays
	`

	InsertHoliday = `
	INSERT INTO holidays (date) VALUES (?)
	`
)
