package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = leave.StatusPending
	}

	query := `
		INSERT INTO leave_requests (id, user_id, request_type, start_date, end_date, request_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.UserID, l.RequestType, l.StartDate, l.EndDate, l.RequestDate, l.Reason, l.Status,
	).Scan(&l.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.request_type, l.start_date, l.end_date, l.request_date,
			   l.reason, l.status, l.created_at, u.username
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		WHERE l.id = $1
	`

	var l leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.RequestType, &l.StartDate, &l.EndDate, &l.RequestDate,
		&l.Reason, &l.Status, &l.CreatedAt, &l.Username,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, request_type, start_date, end_date, request_date, reason, status, created_at
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.RequestType, &l.StartDate, &l.EndDate, &l.RequestDate,
			&l.Reason, &l.Status, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}

	return requests, rows.Err()
}

func (r *leaveRepository) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.request_type, l.start_date, l.end_date, l.request_date,
			   l.reason, l.status, l.created_at, u.username
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		WHERE l.status = 'pending'
		ORDER BY COALESCE(l.request_date, l.start_date), l.created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.RequestType, &l.StartDate, &l.EndDate, &l.RequestDate,
			&l.Reason, &l.Status, &l.CreatedAt, &l.Username,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}

	return requests, rows.Err()
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE leave_requests SET status = $2 WHERE id = $1 RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	return nil
}
