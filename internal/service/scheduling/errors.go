package scheduling

import "errors"

var (
	ErrNotFound         = errors.New("appointment not found")
	ErrInvalidTimeRange = errors.New("end_time must be after start_time")
	ErrDoubleBooking    = errors.New("appointment overlaps with an existing booking")
	ErrTerminalStatus   = errors.New("appointment is in a terminal status")
	ErrInvalidStatus    = errors.New("invalid status transition")
)
