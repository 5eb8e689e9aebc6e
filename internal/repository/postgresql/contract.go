package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/contract"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type contractRepository struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO contracts (id, user_id, start_date, end_date, pay_rate, pay_unit)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		c.ID, c.UserID, c.StartDate, c.EndDate, c.PayRate, c.PayUnit,
	).Scan(&c.CreatedAt)
	if err != nil {
		return contract.Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return c, nil
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, pay_rate, pay_unit, created_at
		FROM contracts
		WHERE id = $1
	`

	var c contract.Contract
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.StartDate, &c.EndDate, &c.PayRate, &c.PayUnit, &c.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("failed to get contract: %w", err)
	}

	return c, nil
}

func (r *contractRepository) GetByUserID(ctx context.Context, userID string) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, pay_rate, pay_unit, created_at
		FROM contracts
		WHERE user_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []contract.Contract
	for rows.Next() {
		var c contract.Contract
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.StartDate, &c.EndDate, &c.PayRate, &c.PayUnit, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

func (r *contractRepository) Update(ctx context.Context, c contract.Contract) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE contracts
		SET start_date = $2, end_date = $3, pay_rate = $4, pay_unit = $5
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, c.ID, c.StartDate, c.EndDate, c.PayRate, c.PayUnit).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.ErrContractNotFound
		}
		return fmt.Errorf("failed to update contract: %w", err)
	}

	return nil
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM contracts WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.ErrContractNotFound
		}
		return fmt.Errorf("failed to delete contract: %w", err)
	}

	return nil
}
