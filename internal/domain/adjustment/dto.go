package adjustment

import (
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdjustmentRequest struct {
	UserID string           `json:"user_id"`
	Kind   string           `json:"kind"`
	Month  int              `json:"month"`
	Year   int              `json:"year"`
	Amount *decimal.Decimal `json:"amount"`
	Reason *string          `json:"reason,omitempty"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if r.Kind != string(KindBonus) && r.Kind != string(KindDeduction) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'bonus' or 'deduction'"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be positive"})
	}
	if r.Amount == nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "is required"})
	} else if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	ID       string          `json:"id"`
	UserID   string          `json:"user_id"`
	Username *string         `json:"username,omitempty"`
	Kind     string          `json:"kind"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Amount   decimal.Decimal `json:"amount"`
	Reason   *string         `json:"reason,omitempty"`
}

func ToResponse(a Adjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		Username: a.Username,
		Kind:     string(a.Kind),
		Month:    a.Month,
		Year:     a.Year,
		Amount:   a.Amount,
		Reason:   a.Reason,
	}
}
