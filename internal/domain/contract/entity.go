package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayUnit string

const (
	PayUnitMonth PayUnit = "month"
	PayUnitHour  PayUnit = "hour"
)

// Contract is one pay agreement for an employee. An employee may hold
// several over time; PickApplicable decides which one pays a given month.
type Contract struct {
	ID        string
	UserID    string
	StartDate time.Time
	EndDate   *time.Time
	PayRate   decimal.Decimal
	PayUnit   PayUnit
	CreatedAt time.Time

	// Joined fields
	Username *string
}

// IsActiveOn reports whether the contract's own validity range covers d.
// Display only: the payroll resolver intentionally does not use EndDate.
func (c Contract) IsActiveOn(d time.Time) bool {
	day := d.Truncate(24 * time.Hour)
	if c.StartDate.After(day) {
		return false
	}
	return c.EndDate == nil || !c.EndDate.Before(day)
}
