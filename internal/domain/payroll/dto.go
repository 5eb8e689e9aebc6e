package payroll

import (
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RunPayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *RunPayrollRequest) Validate() error {
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

// RunSummary is the one-line outcome of a payroll batch.
type RunSummary struct {
	Month     int      `json:"month"`
	Year      int      `json:"year"`
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	SkippedBy []string `json:"skipped_usernames,omitempty"`
}

type PayrollResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Username       *string         `json:"username,omitempty"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	GrossSalary    decimal.Decimal `json:"gross_salary"`
	TotalBonus     decimal.Decimal `json:"total_bonus"`
	TotalDeduction decimal.Decimal `json:"total_deduction"`
	NetSalary      decimal.Decimal `json:"net_salary"`
}

func ToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		Username:       p.Username,
		Month:          p.Month,
		Year:           p.Year,
		GrossSalary:    p.GrossSalary,
		TotalBonus:     p.TotalBonus,
		TotalDeduction: p.TotalDeduction,
		NetSalary:      p.NetSalary,
	}
}

type SalarySettingsResponse struct {
	StandardWorkDaysPerMonth int             `json:"standard_work_days_per_month"`
	StandardWorkHoursPerDay  float64         `json:"standard_work_hours_per_day"`
	LatePenaltyAmount        decimal.Decimal `json:"late_penalty_amount"`
}

type UpdateSalarySettingsRequest struct {
	StandardWorkDaysPerMonth *int             `json:"standard_work_days_per_month,omitempty"`
	StandardWorkHoursPerDay  *float64         `json:"standard_work_hours_per_day,omitempty"`
	LatePenaltyAmount        *decimal.Decimal `json:"late_penalty_amount,omitempty"`
}

func (r *UpdateSalarySettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StandardWorkDaysPerMonth != nil && *r.StandardWorkDaysPerMonth <= 0 {
		errs = append(errs, validator.ValidationError{Field: "standard_work_days_per_month", Message: "must be positive"})
	}
	if r.StandardWorkHoursPerDay != nil && *r.StandardWorkHoursPerDay <= 0 {
		errs = append(errs, validator.ValidationError{Field: "standard_work_hours_per_day", Message: "must be positive"})
	}
	if r.LatePenaltyAmount != nil && r.LatePenaltyAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "late_penalty_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
