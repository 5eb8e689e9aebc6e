package postgresql

import (
	"context"
	"fmt"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/payroll"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type salarySettingsRepository struct {
	db *database.DB
}

func NewSalarySettingsRepository(db *database.DB) payroll.SalarySettingsRepository {
	return &salarySettingsRepository{db: db}
}

func (r *salarySettingsRepository) Get(ctx context.Context) (payroll.SalarySettings, error) {
	q := GetQuerier(ctx, r.db)

	// Singleton table: at most one row.
	query := `
		SELECT id, standard_work_days_per_month, standard_work_hours_per_day, late_penalty_amount, updated_at
		FROM salary_settings
		LIMIT 1
	`

	var s payroll.SalarySettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.StandardWorkDaysPerMonth, &s.StandardWorkHoursPerDay, &s.LatePenaltyAmount, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalarySettings{}, payroll.ErrSalarySettingsNotFound
		}
		return payroll.SalarySettings{}, fmt.Errorf("failed to get salary settings: %w", err)
	}

	return s, nil
}

func (r *salarySettingsRepository) Upsert(ctx context.Context, s payroll.SalarySettings) (payroll.SalarySettings, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		existing, err := r.Get(ctx)
		if err == nil {
			s.ID = existing.ID
		} else {
			s.ID = uuid.NewString()
		}
	}

	query := `
		INSERT INTO salary_settings (id, standard_work_days_per_month, standard_work_hours_per_day, late_penalty_amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			standard_work_days_per_month = EXCLUDED.standard_work_days_per_month,
			standard_work_hours_per_day = EXCLUDED.standard_work_hours_per_day,
			late_penalty_amount = EXCLUDED.late_penalty_amount,
			updated_at = NOW()
		RETURNING id, standard_work_days_per_month, standard_work_hours_per_day, late_penalty_amount, updated_at
	`

	var saved payroll.SalarySettings
	err := q.QueryRow(ctx, query,
		s.ID, s.StandardWorkDaysPerMonth, s.StandardWorkHoursPerDay, s.LatePenaltyAmount,
	).Scan(
		&saved.ID, &saved.StandardWorkDaysPerMonth, &saved.StandardWorkHoursPerDay, &saved.LatePenaltyAmount, &saved.UpdatedAt,
	)
	if err != nil {
		return payroll.SalarySettings{}, fmt.Errorf("failed to upsert salary settings: %w", err)
	}

	return saved, nil
}
