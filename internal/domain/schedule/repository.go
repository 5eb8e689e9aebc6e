package schedule

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string) error

	// HasAssignments reports whether any assignment references the
	// shift; such shifts cannot be deleted.
	HasAssignments(ctx context.Context, shiftID string) (bool, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)

	// GetForUserAndDate returns the employee's assignment on a date,
	// nil when unscheduled.
	GetForUserAndDate(ctx context.Context, userID string, date time.Time) (*Assignment, error)

	ListByDateRange(ctx context.Context, from, to time.Time) ([]Assignment, error)
	Delete(ctx context.Context, id string) error
}
