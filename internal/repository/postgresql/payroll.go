package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/payroll"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// SaveAll writes the whole batch inside one transaction. A failed
// upsert rolls every previous one back, so a payroll run is all or
// nothing.
func (r *payrollRepository) SaveAll(ctx context.Context, records []payroll.Payroll) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		for _, record := range records {
			if err := r.upsert(txCtx, record); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *payrollRepository) upsert(ctx context.Context, p payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payrolls (id, user_id, month, year, gross_salary, total_bonus, total_deduction, net_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, month, year) DO UPDATE SET
			gross_salary = EXCLUDED.gross_salary,
			total_bonus = EXCLUDED.total_bonus,
			total_deduction = EXCLUDED.total_deduction,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		p.ID, p.UserID, p.Month, p.Year, p.GrossSalary, p.TotalBonus, p.TotalDeduction, p.NetSalary,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert payroll record for user %s: %w", p.UserID, err)
	}

	return nil
}

func (r *payrollRepository) GetByUserAndPeriod(ctx context.Context, userID string, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month, year, gross_salary, total_bonus, total_deduction, net_salary,
			   created_at, updated_at
		FROM payrolls
		WHERE user_id = $1 AND month = $2 AND year = $3
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, userID, month, year).Scan(
		&p.ID, &p.UserID, &p.Month, &p.Year, &p.GrossSalary, &p.TotalBonus, &p.TotalDeduction, &p.NetSalary,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.user_id, p.month, p.year, p.gross_salary, p.total_bonus, p.total_deduction,
			   p.net_salary, p.created_at, p.updated_at, u.username
		FROM payrolls p
		JOIN users u ON u.id = p.user_id
		WHERE p.month = $1 AND p.year = $2
		ORDER BY u.username
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Month, &p.Year, &p.GrossSalary, &p.TotalBonus, &p.TotalDeduction,
			&p.NetSalary, &p.CreatedAt, &p.UpdatedAt, &p.Username,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, rows.Err()
}
