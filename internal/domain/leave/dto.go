package leave

import (
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	RequestType string  `json:"request_type"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	RequestDate *string `json:"request_date,omitempty"`
	Reason      string  `json:"reason"`

	// parsed values, filled by Validate
	StartDateValue   *time.Time `json:"-"`
	EndDateValue     *time.Time `json:"-"`
	RequestDateValue *time.Time `json:"-"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.RequestType, []string{string(TypeLeave), string(TypeLate), string(TypeEarly)}) {
		errs = append(errs, validator.ValidationError{Field: "request_type", Message: "must be 'leave', 'late' or 'early'"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	switch r.RequestType {
	case string(TypeLeave):
		if r.StartDate == nil {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required for leave requests"})
		} else if t, ok := validator.IsValidDate(*r.StartDate); ok {
			r.StartDateValue = &t
		} else {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
		if r.EndDate == nil {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required for leave requests"})
		} else if t, ok := validator.IsValidDate(*r.EndDate); ok {
			r.EndDateValue = &t
		} else {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
		if r.StartDateValue != nil && r.EndDateValue != nil && r.EndDateValue.Before(*r.StartDateValue) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
	case string(TypeLate), string(TypeEarly):
		if r.RequestDate == nil {
			errs = append(errs, validator.ValidationError{Field: "request_date", Message: "is required for late/early requests"})
		} else if t, ok := validator.IsValidDate(*r.RequestDate); ok {
			r.RequestDateValue = &t
		} else {
			errs = append(errs, validator.ValidationError{Field: "request_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Username    *string `json:"username,omitempty"`
	RequestType string  `json:"request_type"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	RequestDate *string `json:"request_date,omitempty"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Username:    l.Username,
		RequestType: string(l.RequestType),
		StartDate:   datePtrToString(l.StartDate),
		EndDate:     datePtrToString(l.EndDate),
		RequestDate: datePtrToString(l.RequestDate),
		Reason:      l.Reason,
		Status:      string(l.Status),
	}
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format("2006-01-02")
	return &str
}
