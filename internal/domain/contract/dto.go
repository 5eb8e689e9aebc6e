package contract

import (
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateContractRequest struct {
	UserID    string           `json:"-"`
	StartDate string           `json:"start_date"`
	EndDate   *string          `json:"end_date,omitempty"`
	PayRate   *decimal.Decimal `json:"pay_rate"`
	PayUnit   string           `json:"pay_unit"`
}

func (r *CreateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.PayRate == nil {
		errs = append(errs, validator.ValidationError{Field: "pay_rate", Message: "is required"})
	} else if r.PayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pay_rate", Message: "must be non-negative"})
	}
	if r.PayUnit != string(PayUnitMonth) && r.PayUnit != string(PayUnitHour) {
		errs = append(errs, validator.ValidationError{Field: "pay_unit", Message: "must be 'month' or 'hour'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateContractRequest struct {
	ID        string           `json:"-"`
	StartDate *string          `json:"start_date,omitempty"`
	EndDate   *string          `json:"end_date,omitempty"`
	PayRate   *decimal.Decimal `json:"pay_rate,omitempty"`
	PayUnit   *string          `json:"pay_unit,omitempty"`
}

func (r *UpdateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.PayRate != nil && r.PayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pay_rate", Message: "must be non-negative"})
	}
	if r.PayUnit != nil && *r.PayUnit != string(PayUnitMonth) && *r.PayUnit != string(PayUnitHour) {
		errs = append(errs, validator.ValidationError{Field: "pay_unit", Message: "must be 'month' or 'hour'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContractResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	StartDate string          `json:"start_date"`
	EndDate   *string         `json:"end_date,omitempty"`
	PayRate   decimal.Decimal `json:"pay_rate"`
	PayUnit   string          `json:"pay_unit"`
	IsActive  bool            `json:"is_active"`
}

func ToResponse(c Contract, now time.Time) ContractResponse {
	var endDateStr *string
	if c.EndDate != nil {
		str := c.EndDate.Format("2006-01-02")
		endDateStr = &str
	}

	return ContractResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		StartDate: c.StartDate.Format("2006-01-02"),
		EndDate:   endDateStr,
		PayRate:   c.PayRate,
		PayUnit:   string(c.PayUnit),
		IsActive:  c.IsActiveOn(now),
	}
}
