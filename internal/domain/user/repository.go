package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetEmployees returns all non-admin users, ordered by username.
	// This is the payroll-eligible population.
	GetEmployees(ctx context.Context) ([]User, error)

	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}
