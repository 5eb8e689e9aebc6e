package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListPending returns pending requests of all employees, oldest
	// relevant date first.
	ListPending(ctx context.Context) ([]LeaveRequest, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
}
