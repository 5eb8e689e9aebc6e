package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (id, user_id, date, check_in, check_out, shift_id, late_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.UserID, att.Date, att.CheckIn, att.CheckOut, att.ShiftID, att.LateMinutes,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return att, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.check_in, a.check_out, a.shift_id, a.late_minutes,
			   a.created_at, a.updated_at, u.username
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.ShiftID, &att.LateMinutes,
		&att.CreatedAt, &att.UpdatedAt, &att.Username,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return att, nil
}

// GetOpenShift scans across all dates on purpose: an employee who
// forgot to check out yesterday still carries that shift today.
func (r *attendanceRepository) GetOpenShift(ctx context.Context, userID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, shift_id, late_minutes, created_at, updated_at
		FROM attendances
		WHERE user_id = $1
		  AND check_out IS NULL
		ORDER BY check_in DESC NULLS LAST
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID).Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.ShiftID, &att.LateMinutes,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open shift: %w", err)
	}

	return &att, nil
}

func (r *attendanceRepository) GetByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, shift_id, late_minutes, created_at, updated_at
		FROM attendances
		WHERE user_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET date = $2, check_in = $3, check_out = $4, shift_id = $5, late_minutes = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, att.ID, att.Date, att.CheckIn, att.CheckOut, att.ShiftID, att.LateMinutes).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

func (r *attendanceRepository) ListMine(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, shift_id, late_minutes, created_at, updated_at
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC, check_in DESC
	`
	args := []interface{}{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

func (r *attendanceRepository) ListAll(ctx context.Context, page, limit int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	offset := (page - 1) * limit

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := `
		SELECT a.id, a.user_id, a.date, a.check_in, a.check_out, a.shift_id, a.late_minutes,
			   a.created_at, a.updated_at, u.username
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.date DESC, u.username
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.ShiftID, &att.LateMinutes,
			&att.CreatedAt, &att.UpdatedAt, &att.Username,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, total, rows.Err()
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut, &att.ShiftID, &att.LateMinutes,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}
