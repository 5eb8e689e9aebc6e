package payroll

import "context"

type PayrollRepository interface {
	// SaveAll upserts every record in one transaction, keyed by
	// (user_id, month, year). Any failure rolls the whole batch back.
	SaveAll(ctx context.Context, records []Payroll) error

	GetByUserAndPeriod(ctx context.Context, userID string, month, year int) (Payroll, error)

	// ListByPeriod returns the period's records with usernames joined,
	// ordered by username.
	ListByPeriod(ctx context.Context, month, year int) ([]Payroll, error)
}

type SalarySettingsRepository interface {
	// Get returns the singleton settings row, or
	// ErrSalarySettingsNotFound when none exists.
	Get(ctx context.Context) (SalarySettings, error)

	Upsert(ctx context.Context, s SalarySettings) (SalarySettings, error)
}
