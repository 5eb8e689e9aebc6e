package schedule

import "time"

// Shift is a named working window, e.g. "Morning" 08:00-12:00. Times
// are minutes since midnight so they survive timezones and JSON.
type Shift struct {
	ID           string
	Name         string
	StartMinutes int
	EndMinutes   int
	CreatedAt    time.Time
}

// StartOn anchors the shift's start time to a concrete calendar day in
// the given location. Check-in lateness is measured against this.
func (s Shift) StartOn(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.StartMinutes/60, s.StartMinutes%60, 0, 0, loc)
}

// Assignment maps an employee to a shift on one date. Its absence is a
// valid state: no schedule that day.
type Assignment struct {
	ID        string
	UserID    string
	ShiftID   string
	Date      time.Time
	CreatedAt time.Time

	// Joined fields
	Username  *string
	ShiftName *string
}
