package constants

const (
	MsgInvalidAdminPin   = "invalid admin PIN"
	MsgInvalidBody       = "invalid request body"
	MsgVehicleNameEmpty  = "vehicle name must not be empty"
	MsgNegativeHours     = "hours must not be negative"
	MsgBandLength        = "band must contain exactly 10 slots"
	MsgStationOutOfRange = "station must be between 1 and 10"
	MsgStoreBusy         = "store busy, retry"
)
