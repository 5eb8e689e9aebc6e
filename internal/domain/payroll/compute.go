package payroll

import (
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/adjustment"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/contract"
	"github.com/shopspring/decimal"
)

// GrossSalary derives the pre-adjustment pay from the contract and the
// month's attendance aggregate.
//
// Monthly contracts pro-rate the rate by worked days over the standard
// month: rate * workedDays / standardWorkDaysPerMonth. A standard-days
// value of zero (or less) yields a gross of 0 rather than an error;
// inherited behavior, pinned by tests.
// Hourly contracts pay rate * total worked hours.
func GrossSalary(c contract.Contract, m attendance.Metrics, settings SalarySettings) decimal.Decimal {
	switch c.PayUnit {
	case contract.PayUnitMonth:
		if settings.StandardWorkDaysPerMonth <= 0 {
			return decimal.Zero
		}
		// Multiply before dividing so an exact quotient stays exact:
		// dividing the day ratio first loses precision on repeating
		// fractions (20/24 = 0.8333...).
		worked := decimal.NewFromInt(int64(m.WorkedDays))
		standardDays := decimal.NewFromInt(int64(settings.StandardWorkDaysPerMonth))
		return c.PayRate.Mul(worked).Div(standardDays)
	case contract.PayUnitHour:
		return c.PayRate.Mul(decimal.NewFromFloat(m.TotalHours))
	}
	return decimal.Zero
}

// Compute assembles the stored payroll figures for one employee. All
// four amounts are rounded to 2 decimal places, and the net may be
// negative.
func Compute(userID string, month, year int, c contract.Contract, m attendance.Metrics, totals adjustment.Totals, settings SalarySettings) Payroll {
	gross := GrossSalary(c, m, settings)
	net := gross.Add(totals.TotalBonus).Sub(totals.TotalDeduction)

	return Payroll{
		UserID:         userID,
		Month:          month,
		Year:           year,
		GrossSalary:    gross.Round(2),
		TotalBonus:     totals.TotalBonus.Round(2),
		TotalDeduction: totals.TotalDeduction.Round(2),
		NetSalary:      net.Round(2),
	}
}
