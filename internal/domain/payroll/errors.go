package payroll

import "errors"

var (
	// ErrSalarySettingsNotFound aborts a payroll run before any
	// employee is processed.
	ErrSalarySettingsNotFound = errors.New("salary settings are not configured")

	ErrPayrollNotFound = errors.New("payroll record not found")
)
