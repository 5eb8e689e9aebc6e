package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/adjustment"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

func (r *adjustmentRepository) Create(ctx context.Context, a adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO adjustments (id, user_id, kind, month, year, amount, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.UserID, a.Kind, a.Month, a.Year, a.Amount, a.Reason,
	).Scan(&a.CreatedAt)
	if err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	return a, nil
}

func (r *adjustmentRepository) GetByID(ctx context.Context, id string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, kind, month, year, amount, reason, created_at
		FROM adjustments
		WHERE id = $1
	`

	var a adjustment.Adjustment
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.Kind, &a.Month, &a.Year, &a.Amount, &a.Reason, &a.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.Adjustment{}, fmt.Errorf("failed to get adjustment: %w", err)
	}

	return a, nil
}

func (r *adjustmentRepository) ListByUserAndPeriod(ctx context.Context, userID string, month, year int) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, kind, month, year, amount, reason, created_at
		FROM adjustments
		WHERE user_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []adjustment.Adjustment
	for rows.Next() {
		var a adjustment.Adjustment
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Kind, &a.Month, &a.Year, &a.Amount, &a.Reason, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}

	return adjustments, rows.Err()
}

func (r *adjustmentRepository) SumByUserAndPeriod(ctx context.Context, userID string, month, year int) (adjustment.Totals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'bonus'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'deduction'), 0)
		FROM adjustments
		WHERE user_id = $1 AND month = $2 AND year = $3
	`

	var totals adjustment.Totals
	err := q.QueryRow(ctx, query, userID, month, year).Scan(&totals.TotalBonus, &totals.TotalDeduction)
	if err != nil {
		return adjustment.Totals{}, fmt.Errorf("failed to sum adjustments: %w", err)
	}

	return totals, nil
}

func (r *adjustmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM adjustments WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return adjustment.ErrAdjustmentNotFound
		}
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}

	return nil
}
