package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/adjustment"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/contract"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/payroll"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/user"
)

type Service struct {
	users       user.UserRepository
	contracts   contract.ContractRepository
	attendances attendance.AttendanceRepository
	adjustments adjustment.AdjustmentRepository
	payrolls    payroll.PayrollRepository
	settings    payroll.SalarySettingsRepository
	logger      *slog.Logger
}

func NewService(
	users user.UserRepository,
	contracts contract.ContractRepository,
	attendances attendance.AttendanceRepository,
	adjustments adjustment.AdjustmentRepository,
	payrolls payroll.PayrollRepository,
	settings payroll.SalarySettingsRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:       users,
		contracts:   contracts,
		attendances: attendances,
		adjustments: adjustments,
		payrolls:    payrolls,
		settings:    settings,
		logger:      logger,
	}
}

// Run calculates and stores payroll for every employee for (month,
// year). Employees without an applicable contract are skipped and
// counted; everything that is computed is persisted in one transaction,
// so a storage failure leaves no partial period behind. Re-running a
// period overwrites the previous figures.
func (s *Service) Run(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunSummary, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunSummary{}, err
	}

	// Settings are a hard precondition; without them the batch aborts
	// before looking at any employee.
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return payroll.RunSummary{}, err
	}

	employees, err := s.users.GetEmployees(ctx)
	if err != nil {
		return payroll.RunSummary{}, fmt.Errorf("failed to list employees: %w", err)
	}

	first, last := attendance.MonthRange(req.Month, req.Year)

	summary := payroll.RunSummary{Month: req.Month, Year: req.Year}
	records := make([]payroll.Payroll, 0, len(employees))

	for _, emp := range employees {
		contracts, err := s.contracts.GetByUserID(ctx, emp.ID)
		if err != nil {
			return payroll.RunSummary{}, fmt.Errorf("failed to list contracts for %s: %w", emp.Username, err)
		}

		applicable := contract.PickApplicable(contracts, req.Month, req.Year)
		if applicable == nil {
			s.logger.Info("skipping employee without applicable contract",
				"username", emp.Username, "month", req.Month, "year", req.Year)
			summary.Skipped++
			summary.SkippedBy = append(summary.SkippedBy, emp.Username)
			continue
		}

		rows, err := s.attendances.GetByUserAndRange(ctx, emp.ID, first, last)
		if err != nil {
			return payroll.RunSummary{}, fmt.Errorf("failed to load attendance for %s: %w", emp.Username, err)
		}
		metrics := attendance.CalculateMetrics(rows)

		totals, err := s.adjustments.SumByUserAndPeriod(ctx, emp.ID, req.Month, req.Year)
		if err != nil {
			return payroll.RunSummary{}, fmt.Errorf("failed to sum adjustments for %s: %w", emp.Username, err)
		}

		record := payroll.Compute(emp.ID, req.Month, req.Year, *applicable, metrics, totals, settings)
		records = append(records, record)
		summary.Processed++

		s.logger.Info("payroll computed",
			"username", emp.Username,
			"worked_days", metrics.WorkedDays,
			"total_hours", metrics.TotalHours,
			"gross", record.GrossSalary.String(),
			"net", record.NetSalary.String())
	}

	if err := s.payrolls.SaveAll(ctx, records); err != nil {
		return payroll.RunSummary{}, fmt.Errorf("failed to store payroll batch: %w", err)
	}

	s.logger.Info("payroll run finished",
		"month", req.Month, "year", req.Year,
		"processed", summary.Processed, "skipped", summary.Skipped)

	return summary, nil
}

func (s *Service) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollResponse, error) {
	req := payroll.RunPayrollRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.payrolls.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		responses = append(responses, payroll.ToResponse(p))
	}
	return responses, nil
}

// MyPayslip returns one employee's stored payroll row for the period.
func (s *Service) MyPayslip(ctx context.Context, employeeID string, month, year int) (payroll.PayrollResponse, error) {
	req := payroll.RunPayrollRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	p, err := s.payrolls.GetByUserAndPeriod(ctx, employeeID, month, year)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToResponse(p), nil
}

func (s *Service) GetSettings(ctx context.Context) (payroll.SalarySettingsResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return payroll.SalarySettingsResponse{}, err
	}
	return toSettingsResponse(settings), nil
}

func (s *Service) UpdateSettings(ctx context.Context, req payroll.UpdateSalarySettingsRequest) (payroll.SalarySettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalarySettingsResponse{}, err
	}

	current, err := s.settings.Get(ctx)
	if err != nil && err != payroll.ErrSalarySettingsNotFound {
		return payroll.SalarySettingsResponse{}, err
	}

	if req.StandardWorkDaysPerMonth != nil {
		current.StandardWorkDaysPerMonth = *req.StandardWorkDaysPerMonth
	}
	if req.StandardWorkHoursPerDay != nil {
		current.StandardWorkHoursPerDay = *req.StandardWorkHoursPerDay
	}
	if req.LatePenaltyAmount != nil {
		current.LatePenaltyAmount = *req.LatePenaltyAmount
	}

	saved, err := s.settings.Upsert(ctx, current)
	if err != nil {
		return payroll.SalarySettingsResponse{}, err
	}
	return toSettingsResponse(saved), nil
}

func toSettingsResponse(s payroll.SalarySettings) payroll.SalarySettingsResponse {
	return payroll.SalarySettingsResponse{
		StandardWorkDaysPerMonth: s.StandardWorkDaysPerMonth,
		StandardWorkHoursPerDay:  s.StandardWorkHoursPerDay,
		LatePenaltyAmount:        s.LatePenaltyAmount,
	}
}
