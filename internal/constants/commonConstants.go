package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

const (
	// BandStations is the fixed number of stations on the production band.
	// The band_slots table always holds exactly this many rows, stations 1..10.
	BandStations = 10

	// MaxHistory bounds the completion ledger; the oldest entries are pruned
	// once the count exceeds it.
	MaxHistory = 1000

	DefaultEmployees   = 1
	DefaultWindowStart = "06:30"
	DefaultWindowEnd   = "16:15"
	DefaultWorkDays    = "1,2,3,4,5"
	DefaultAdminPin    = "1412"

	DefaultHistoryLimit = 100
)

// DefaultBreaks are seeded into an empty database. The same intervals apply
// on every work day.
var DefaultBreaks = [][2]string{
	{"09:30", "09:45"},
	{"12:45", "13:15"},
}
