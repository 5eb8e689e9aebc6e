package report

import "github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"

type PeriodRequest struct {
	Month int
	Year  int
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Export is a generated download: the bytes plus the name and MIME
// type the HTTP handler should serve them under.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}
