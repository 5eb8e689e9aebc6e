package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/schedule"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, s schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO shifts (id, name, start_minutes, end_minutes)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.Name, s.StartMinutes, s.EndMinutes).Scan(&s.CreatedAt)
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_minutes, end_minutes, created_at
		FROM shifts
		WHERE id = $1
	`

	var s schedule.Shift
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.StartMinutes, &s.EndMinutes, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Shift{}, schedule.ErrShiftNotFound
		}
		return schedule.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) List(ctx context.Context) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_minutes, end_minutes, created_at
		FROM shifts
		ORDER BY start_minutes
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var s schedule.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.StartMinutes, &s.EndMinutes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

func (r *shiftRepository) Update(ctx context.Context, s schedule.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $2, start_minutes = $3, end_minutes = $4
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, s.ID, s.Name, s.StartMinutes, s.EndMinutes).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM shifts WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return nil
}

func (r *shiftRepository) HasAssignments(ctx context.Context, shiftID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shift_assignments WHERE shift_id = $1)`, shiftID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check shift assignments: %w", err)
	}

	return exists, nil
}

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) schedule.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO shift_assignments (id, user_id, shift_id, date)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.UserID, a.ShiftID, a.Date).Scan(&a.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_shift_assignment_user_date") {
			return schedule.Assignment{}, schedule.ErrAlreadyAssigned
		}
		return schedule.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return a, nil
}

func (r *assignmentRepository) GetForUserAndDate(ctx context.Context, userID string, date time.Time) (*schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.user_id, sa.shift_id, sa.date, sa.created_at, s.name
		FROM shift_assignments sa
		JOIN shifts s ON s.id = sa.shift_id
		WHERE sa.user_id = $1 AND sa.date = $2
		LIMIT 1
	`

	var a schedule.Assignment
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&a.ID, &a.UserID, &a.ShiftID, &a.Date, &a.CreatedAt, &a.ShiftName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return &a, nil
}

func (r *assignmentRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.user_id, sa.shift_id, sa.date, sa.created_at, s.name, u.username
		FROM shift_assignments sa
		JOIN shifts s ON s.id = sa.shift_id
		JOIN users u ON u.id = sa.user_id
		WHERE sa.date BETWEEN $1 AND $2
		ORDER BY sa.date, s.start_minutes, u.username
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.Assignment
	for rows.Next() {
		var a schedule.Assignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.ShiftID, &a.Date, &a.CreatedAt, &a.ShiftName, &a.Username); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM shift_assignments WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}

	return nil
}
