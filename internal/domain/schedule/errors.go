package schedule

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftInUse         = errors.New("shift has assignments and cannot be deleted")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrAlreadyAssigned    = errors.New("employee already assigned to a shift on that date")
)
