package attendance

import "time"

// Attendance is one shift record. A row with CheckIn set and CheckOut
// still nil is an "open shift"; the employee carries it until they
// check out, even across calendar days.
type Attendance struct {
	ID          string
	UserID      string
	Date        time.Time
	CheckIn     *time.Time
	CheckOut    *time.Time
	ShiftID     *string
	LateMinutes *int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	Username  *string
	ShiftName *string
}

// IsComplete reports whether both ends of the shift were recorded.
// Only complete shifts count toward payroll.
func (a Attendance) IsComplete() bool {
	return a.CheckIn != nil && a.CheckOut != nil
}

// WorkedHours returns the shift duration in hours, 0 for open or
// partial rows.
func (a Attendance) WorkedHours() float64 {
	if !a.IsComplete() {
		return 0
	}
	return a.CheckOut.Sub(*a.CheckIn).Hours()
}
