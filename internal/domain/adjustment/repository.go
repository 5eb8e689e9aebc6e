package adjustment

import "context"

type AdjustmentRepository interface {
	Create(ctx context.Context, a Adjustment) (Adjustment, error)
	GetByID(ctx context.Context, id string) (Adjustment, error)

	// ListByUserAndPeriod returns the employee's adjustments for
	// (month, year), both kinds.
	ListByUserAndPeriod(ctx context.Context, userID string, month, year int) ([]Adjustment, error)

	// SumByUserAndPeriod totals bonus and deduction amounts for the
	// period; zero when no rows exist.
	SumByUserAndPeriod(ctx context.Context, userID string, month, year int) (Totals, error)

	Delete(ctx context.Context, id string) error
}
