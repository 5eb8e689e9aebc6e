package attendance

import (
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Username    *string `json:"username,omitempty"`
	Date        string  `json:"date"`
	CheckIn     *string `json:"check_in,omitempty"`
	CheckOut    *string `json:"check_out,omitempty"`
	ShiftID     *string `json:"shift_id,omitempty"`
	ShiftName   *string `json:"shift_name,omitempty"`
	LateMinutes *int    `json:"late_minutes,omitempty"`
	WorkedHours float64 `json:"worked_hours"`
}

// CheckOutResponse wraps the closed row. Warning is set instead of an
// error when there was nothing to close.
type CheckOutResponse struct {
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
	Warning    string              `json:"warning,omitempty"`
}

type EditAttendanceRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Date     *string `json:"date,omitempty"`

	// parsed values, filled by Validate
	CheckInTime  *time.Time `json:"-"`
	CheckOutTime *time.Time `json:"-"`
	DateValue    *time.Time `json:"-"`
}

// Validate parses the timestamp fields. Empty strings clear the field;
// anything else must parse or the whole edit is rejected.
func (r *EditAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil && *r.CheckIn != "" {
		t, ok := validator.IsValidDateTime(*r.CheckIn)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid timestamp"})
		} else {
			r.CheckInTime = &t
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		t, ok := validator.IsValidDateTime(*r.CheckOut)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid timestamp"})
		} else {
			r.CheckOutTime = &t
		}
	}
	if r.Date != nil && *r.Date != "" {
		t, ok := validator.IsValidDate(*r.Date)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else {
			r.DateValue = &t
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Username:    a.Username,
		Date:        a.Date.Format("2006-01-02"),
		CheckIn:     timePtrToString(a.CheckIn),
		CheckOut:    timePtrToString(a.CheckOut),
		ShiftID:     a.ShiftID,
		ShiftName:   a.ShiftName,
		LateMinutes: a.LateMinutes,
		WorkedHours: a.WorkedHours(),
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
