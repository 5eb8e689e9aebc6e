package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is the stored result of one payroll run for one employee and
// period. Exactly one row exists per (user, month, year); every
// recalculation overwrites it.
type Payroll struct {
	ID             string
	UserID         string
	Month          int
	Year           int
	GrossSalary    decimal.Decimal
	TotalBonus     decimal.Decimal
	TotalDeduction decimal.Decimal
	NetSalary      decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	Username *string
}

// SalarySettings is the single payroll configuration row. The batch
// loads it once and passes it down; it must exist before payroll can
// run.
type SalarySettings struct {
	ID                       string
	StandardWorkDaysPerMonth int
	StandardWorkHoursPerDay  float64
	LatePenaltyAmount        decimal.Decimal
	UpdatedAt                time.Time
}
