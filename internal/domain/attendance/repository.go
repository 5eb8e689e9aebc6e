package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetOpenShift returns the most recently opened row (check_in DESC)
	// with no check_out, across all dates. nil when the employee has
	// no open shift.
	GetOpenShift(ctx context.Context, userID string) (*Attendance, error)

	// GetByUserAndRange returns rows whose date falls in [from, to],
	// ordered by date.
	GetByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)

	Update(ctx context.Context, att Attendance) error

	// ListMine returns the employee's rows, newest date first.
	ListMine(ctx context.Context, userID string, limit int) ([]Attendance, error)

	// ListAll returns all rows with usernames joined, paginated,
	// newest date first.
	ListAll(ctx context.Context, page, limit int) ([]Attendance, int64, error)
}
