package attendance

import "errors"

var (
	// ErrShiftAlreadyOpen means a previous shift (any date) was never
	// checked out. The employee must close it before starting another.
	ErrShiftAlreadyOpen = errors.New("an open shift already exists; check out first")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
