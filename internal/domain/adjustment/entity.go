package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindBonus     Kind = "bonus"
	KindDeduction Kind = "deduction"
)

// Adjustment is a bonus or deduction recorded against an employee for
// one payroll period.
type Adjustment struct {
	ID        string
	UserID    string
	Kind      Kind
	Month     int
	Year      int
	Amount    decimal.Decimal
	Reason    *string
	CreatedAt time.Time

	// Joined fields
	Username *string
}

// Totals is the per-period aggregate the payroll calculator consumes.
type Totals struct {
	TotalBonus     decimal.Decimal
	TotalDeduction decimal.Decimal
}
