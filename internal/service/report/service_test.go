package report

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"testing"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/payroll"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/report"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	employees []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetEmployees(ctx context.Context) ([]user.User, error) {
	return f.employees, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error   { return nil }

type fakeAttendanceRepo struct {
	byUser map[string][]attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}
func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}
func (f *fakeAttendanceRepo) GetOpenShift(ctx context.Context, userID string) (*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) GetByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	return f.byUser[userID], nil
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) ListMine(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) ListAll(ctx context.Context, page, limit int) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

type fakePayrollRepo struct {
	records []payroll.Payroll
}

func (f *fakePayrollRepo) SaveAll(ctx context.Context, records []payroll.Payroll) error { return nil }
func (f *fakePayrollRepo) GetByUserAndPeriod(ctx context.Context, userID string, month, year int) (payroll.Payroll, error) {
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}
func (f *fakePayrollRepo) ListByPeriod(ctx context.Context, month, year int) ([]payroll.Payroll, error) {
	return f.records, nil
}

func strptr(s string) *string { return &s }

func TestSalarySummaryCSV(t *testing.T) {
	payrolls := &fakePayrollRepo{records: []payroll.Payroll{
		{
			UserID:         "u1",
			Username:       strptr("alice"),
			GrossSalary:    decimal.NewFromInt(5_000_000),
			TotalBonus:     decimal.NewFromInt(500_000),
			TotalDeduction: decimal.NewFromInt(250_000),
			NetSalary:      decimal.NewFromInt(5_250_000),
		},
	}}

	svc := NewService(&fakeUserRepo{}, &fakeAttendanceRepo{}, payrolls)

	export, err := svc.SalarySummary(context.Background(), report.PeriodRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, "salary_summary_2026_01.csv", export.Filename)
	assert.Equal(t, "text/csv", export.ContentType)

	rows, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"employee_id", "username", "gross_salary", "total_bonus", "total_deduction", "net_salary"}, rows[0])
	assert.Equal(t, []string{"u1", "alice", "5000000.00", "500000.00", "250000.00", "5250000.00"}, rows[1])
}

func TestSalarySummaryRejectsBadPeriod(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, &fakeAttendanceRepo{}, &fakePayrollRepo{})

	_, err := svc.SalarySummary(context.Background(), report.PeriodRequest{Month: 0, Year: 2026})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAttendanceDetailZip(t *testing.T) {
	in := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)

	users := &fakeUserRepo{employees: []user.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"}, // no attendance, no file
	}}
	atts := &fakeAttendanceRepo{byUser: map[string][]attendance.Attendance{
		"u1": {{UserID: "u1", Date: in.Truncate(24 * time.Hour), CheckIn: &in, CheckOut: &out}},
	}}

	svc := NewService(users, atts, &fakePayrollRepo{})

	export, err := svc.AttendanceDetail(context.Background(), report.PeriodRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, "attendance_detail_2026_01.zip", export.Filename)
	assert.Equal(t, "application/zip", export.ContentType)

	zr, err := zip.NewReader(bytes.NewReader(export.Data), int64(len(export.Data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "alice_2026_01.csv", zr.File[0].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"date", "check_in", "check_out", "worked_hours"}, rows[0])
	assert.Equal(t, "2026-01-05", rows[1][0])
	assert.Equal(t, "8.00", rows[1][3])
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"alice":        "alice",
		"a b/c":        "a_b_c",
		"../../etc":    "etc",
		"nguyễn văn a": "nguy_n_v_n_a",
		"":             "employee",
	}
	for input, want := range cases {
		assert.Equal(t, want, sanitizeFilename(input), "input %q", input)
	}
}
