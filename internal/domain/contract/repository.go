package contract

import "context"

type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)
	GetByID(ctx context.Context, id string) (Contract, error)

	// GetByUserID returns every contract for the employee, newest
	// start_date first.
	GetByUserID(ctx context.Context, userID string) ([]Contract, error)

	Update(ctx context.Context, c Contract) error
	Delete(ctx context.Context, id string) error
}
