package report

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/payroll"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/report"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/user"
)

type Service struct {
	users       user.UserRepository
	attendances attendance.AttendanceRepository
	payrolls    payroll.PayrollRepository
}

func NewService(
	users user.UserRepository,
	attendances attendance.AttendanceRepository,
	payrolls payroll.PayrollRepository,
) *Service {
	return &Service{users: users, attendances: attendances, payrolls: payrolls}
}

// SalarySummary renders the period's stored payroll rows as one CSV.
func (s *Service) SalarySummary(ctx context.Context, req report.PeriodRequest) (report.Export, error) {
	if err := req.Validate(); err != nil {
		return report.Export{}, err
	}

	records, err := s.payrolls.ListByPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"employee_id", "username", "gross_salary", "total_bonus", "total_deduction", "net_salary"}); err != nil {
		return report.Export{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range records {
		username := ""
		if p.Username != nil {
			username = *p.Username
		}
		row := []string{
			p.UserID,
			username,
			p.GrossSalary.StringFixed(2),
			p.TotalBonus.StringFixed(2),
			p.TotalDeduction.StringFixed(2),
			p.NetSalary.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return report.Export{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return report.Export{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return report.Export{
		Filename:    fmt.Sprintf("salary_summary_%04d_%02d.csv", req.Year, req.Month),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// AttendanceDetail builds a ZIP with one CSV per employee who has
// attendance rows in the period. Employees with nothing recorded get
// no file.
func (s *Service) AttendanceDetail(ctx context.Context, req report.PeriodRequest) (report.Export, error) {
	if err := req.Validate(); err != nil {
		return report.Export{}, err
	}

	employees, err := s.users.GetEmployees(ctx)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to list employees: %w", err)
	}

	first, last := attendance.MonthRange(req.Month, req.Year)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, emp := range employees {
		rows, err := s.attendances.GetByUserAndRange(ctx, emp.ID, first, last)
		if err != nil {
			return report.Export{}, fmt.Errorf("failed to load attendance for %s: %w", emp.Username, err)
		}
		if len(rows) == 0 {
			continue
		}

		name := fmt.Sprintf("%s_%04d_%02d.csv", sanitizeFilename(emp.Username), req.Year, req.Month)
		entry, err := zw.Create(name)
		if err != nil {
			return report.Export{}, fmt.Errorf("failed to create zip entry: %w", err)
		}

		w := csv.NewWriter(entry)
		if err := w.Write([]string{"date", "check_in", "check_out", "worked_hours"}); err != nil {
			return report.Export{}, fmt.Errorf("failed to write csv header: %w", err)
		}
		for _, row := range rows {
			record := []string{
				row.Date.Format("2006-01-02"),
				formatTimestamp(row.CheckIn),
				formatTimestamp(row.CheckOut),
				strconv.FormatFloat(row.WorkedHours(), 'f', 2, 64),
			}
			if err := w.Write(record); err != nil {
				return report.Export{}, fmt.Errorf("failed to write csv row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return report.Export{}, fmt.Errorf("failed to flush csv: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return report.Export{}, fmt.Errorf("failed to close zip: %w", err)
	}

	return report.Export{
		Filename:    fmt.Sprintf("attendance_detail_%04d_%02d.zip", req.Year, req.Month),
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

func sanitizeFilename(name string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(name, "_")
	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		cleaned = "employee"
	}
	return cleaned
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
