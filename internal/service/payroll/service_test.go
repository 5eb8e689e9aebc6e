package payroll

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/adjustment"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/contract"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/payroll"
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
	for _, u := range f.employees {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetEmployees(ctx context.Context) ([]user.User, error) {
	return f.employees, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error  { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error    { return nil }

type fakeContractRepo struct {
	byUser map[string][]contract.Contract
}

func (f *fakeContractRepo) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	return c, nil
}
func (f *fakeContractRepo) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	return contract.Contract{}, contract.ErrContractNotFound
}
func (f *fakeContractRepo) GetByUserID(ctx context.Context, userID string) ([]contract.Contract, error) {
	return f.byUser[userID], nil
}
func (f *fakeContractRepo) Update(ctx context.Context, c contract.Contract) error { return nil }
func (f *fakeContractRepo) Delete(ctx context.Context, id string) error           { return nil }

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
	var out []attendance.Attendance
	for _, a := range f.byUser[userID] {
		if !a.Date.Before(from) && !a.Date.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) ListMine(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	return f.byUser[userID], nil
}
func (f *fakeAttendanceRepo) ListAll(ctx context.Context, page, limit int) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

type fakeAdjustmentRepo struct {
	totals map[string]adjustment.Totals
}

func (f *fakeAdjustmentRepo) Create(ctx context.Context, a adjustment.Adjustment) (adjustment.Adjustment, error) {
	return a, nil
}
func (f *fakeAdjustmentRepo) GetByID(ctx context.Context, id string) (adjustment.Adjustment, error) {
	return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
}
func (f *fakeAdjustmentRepo) ListByUserAndPeriod(ctx context.Context, userID string, month, year int) ([]adjustment.Adjustment, error) {
	return nil, nil
}
func (f *fakeAdjustmentRepo) SumByUserAndPeriod(ctx context.Context, userID string, month, year int) (adjustment.Totals, error) {
	return f.totals[userID], nil
}
func (f *fakeAdjustmentRepo) Delete(ctx context.Context, id string) error { return nil }

type fakePayrollRepo struct {
	saveErr error
	saved   map[string]payroll.Payroll // keyed by user ID
	calls   int
}

func (f *fakePayrollRepo) SaveAll(ctx context.Context, records []payroll.Payroll) error {
	f.calls++
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.saved == nil {
		f.saved = make(map[string]payroll.Payroll)
	}
	for _, p := range records {
		f.saved[p.UserID] = p
	}
	return nil
}
func (f *fakePayrollRepo) GetByUserAndPeriod(ctx context.Context, userID string, month, year int) (payroll.Payroll, error) {
	p, ok := f.saved[userID]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return p, nil
}
func (f *fakePayrollRepo) ListByPeriod(ctx context.Context, month, year int) ([]payroll.Payroll, error) {
	var out []payroll.Payroll
	for _, p := range f.saved {
		out = append(out, p)
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *payroll.SalarySettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (payroll.SalarySettings, error) {
	if f.settings == nil {
		return payroll.SalarySettings{}, payroll.ErrSalarySettingsNotFound
	}
	return *f.settings, nil
}
func (f *fakeSettingsRepo) Upsert(ctx context.Context, s payroll.SalarySettings) (payroll.SalarySettings, error) {
	f.settings = &s
	return s, nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func shift(day string, inHour, outHour int) attendance.Attendance {
	d := date(day)
	in := d.Add(time.Duration(inHour) * time.Hour)
	out := d.Add(time.Duration(outHour) * time.Hour)
	return attendance.Attendance{Date: d, CheckIn: &in, CheckOut: &out}
}

func newTestService(users *fakeUserRepo, contracts *fakeContractRepo, atts *fakeAttendanceRepo, adjs *fakeAdjustmentRepo, payrolls *fakePayrollRepo, settings *fakeSettingsRepo) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(users, contracts, atts, adjs, payrolls, settings, logger)
}

func TestRunComputesAndStores(t *testing.T) {
	users := &fakeUserRepo{employees: []user.User{
		{ID: "u1", Username: "alice", Role: user.RoleEmployee},
	}}
	contracts := &fakeContractRepo{byUser: map[string][]contract.Contract{
		"u1": {{ID: "c1", UserID: "u1", StartDate: date("2025-01-01"), PayRate: decimal.NewFromInt(6_000_000), PayUnit: contract.PayUnitMonth}},
	}}
	atts := &fakeAttendanceRepo{byUser: map[string][]attendance.Attendance{}}
	for day := 1; day <= 20; day++ {
		d := time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		atts.byUser["u1"] = append(atts.byUser["u1"], shift(d, 8, 16))
	}
	adjs := &fakeAdjustmentRepo{totals: map[string]adjustment.Totals{
		"u1": {TotalBonus: decimal.NewFromInt(500_000), TotalDeduction: decimal.NewFromInt(250_000)},
	}}
	payrolls := &fakePayrollRepo{}
	settings := &fakeSettingsRepo{settings: &payroll.SalarySettings{StandardWorkDaysPerMonth: 24, StandardWorkHoursPerDay: 8}}

	svc := newTestService(users, contracts, atts, adjs, payrolls, settings)

	summary, err := svc.Run(context.Background(), payroll.RunPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Skipped)

	stored := payrolls.saved["u1"]
	assert.Equal(t, "5000000.00", stored.GrossSalary.StringFixed(2))
	assert.Equal(t, "5250000.00", stored.NetSalary.StringFixed(2))
}

func TestRunSkipsEmployeeWithoutContract(t *testing.T) {
	users := &fakeUserRepo{employees: []user.User{
		{ID: "u1", Username: "alice", Role: user.RoleEmployee},
		{ID: "u2", Username: "bob", Role: user.RoleEmployee},
	}}
	contracts := &fakeContractRepo{byUser: map[string][]contract.Contract{
		"u1": {{ID: "c1", UserID: "u1", StartDate: date("2025-01-01"), PayRate: decimal.NewFromInt(100_000), PayUnit: contract.PayUnitHour}},
		// bob has no contract at all
	}}
	atts := &fakeAttendanceRepo{byUser: map[string][]attendance.Attendance{}}
	adjs := &fakeAdjustmentRepo{}
	payrolls := &fakePayrollRepo{}
	settings := &fakeSettingsRepo{settings: &payroll.SalarySettings{StandardWorkDaysPerMonth: 24}}

	svc := newTestService(users, contracts, atts, adjs, payrolls, settings)

	summary, err := svc.Run(context.Background(), payroll.RunPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, []string{"bob"}, summary.SkippedBy)

	_, hasBob := payrolls.saved["u2"]
	assert.False(t, hasBob)
}

func TestRunAbortsWithoutSettings(t *testing.T) {
	users := &fakeUserRepo{employees: []user.User{{ID: "u1", Username: "alice"}}}
	payrolls := &fakePayrollRepo{}

	svc := newTestService(users, &fakeContractRepo{}, &fakeAttendanceRepo{}, &fakeAdjustmentRepo{}, payrolls, &fakeSettingsRepo{})

	_, err := svc.Run(context.Background(), payroll.RunPayrollRequest{Month: 1, Year: 2026})
	assert.ErrorIs(t, err, payroll.ErrSalarySettingsNotFound)
	assert.Zero(t, payrolls.calls, "nothing should be written when settings are missing")
}

func TestRunRejectsInvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeContractRepo{}, &fakeAttendanceRepo{}, &fakeAdjustmentRepo{}, &fakePayrollRepo{}, &fakeSettingsRepo{})

	_, err := svc.Run(context.Background(), payroll.RunPayrollRequest{Month: 13, Year: 2026})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.Run(context.Background(), payroll.RunPayrollRequest{Month: 1, Year: 0})
	assert.ErrorAs(t, err, &verrs)
}

func TestRunPropagatesStorageFailure(t *testing.T) {
	users := &fakeUserRepo{employees: []user.User{{ID: "u1", Username: "alice"}}}
	contracts := &fakeContractRepo{byUser: map[string][]contract.Contract{
		"u1": {{ID: "c1", StartDate: date("2025-01-01"), PayRate: decimal.NewFromInt(100), PayUnit: contract.PayUnitMonth}},
	}}
	payrolls := &fakePayrollRepo{saveErr: errors.New("connection reset")}
	settings := &fakeSettingsRepo{settings: &payroll.SalarySettings{StandardWorkDaysPerMonth: 24}}

	svc := newTestService(users, contracts, &fakeAttendanceRepo{}, &fakeAdjustmentRepo{}, payrolls, settings)

	_, err := svc.Run(context.Background(), payroll.RunPayrollRequest{Month: 1, Year: 2026})
	assert.ErrorContains(t, err, "connection reset")
}

func TestRunIsIdempotent(t *testing.T) {
	users := &fakeUserRepo{employees: []user.User{{ID: "u1", Username: "alice"}}}
	contracts := &fakeContractRepo{byUser: map[string][]contract.Contract{
		"u1": {{ID: "c1", StartDate: date("2025-01-01"), PayRate: decimal.NewFromInt(200_000), PayUnit: contract.PayUnitHour}},
	}}
	atts := &fakeAttendanceRepo{byUser: map[string][]attendance.Attendance{
		"u1": {shift("2026-01-05", 8, 16), shift("2026-01-06", 8, 17)},
	}}
	payrolls := &fakePayrollRepo{}
	settings := &fakeSettingsRepo{settings: &payroll.SalarySettings{StandardWorkDaysPerMonth: 24}}

	svc := newTestService(users, contracts, atts, &fakeAdjustmentRepo{}, payrolls, settings)

	_, err := svc.Run(context.Background(), payroll.RunPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)
	first := payrolls.saved["u1"]

	_, err = svc.Run(context.Background(), payroll.RunPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)
	second := payrolls.saved["u1"]

	assert.True(t, first.GrossSalary.Equal(second.GrossSalary))
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	// 17h at 200000/h
	assert.Equal(t, "3400000.00", second.GrossSalary.StringFixed(2))
}

func TestRunOnlyCountsCompleteShifts(t *testing.T) {
	users := &fakeUserRepo{employees: []user.User{{ID: "u1", Username: "alice"}}}
	contracts := &fakeContractRepo{byUser: map[string][]contract.Contract{
		"u1": {{ID: "c1", StartDate: date("2025-01-01"), PayRate: decimal.NewFromInt(2_400_000), PayUnit: contract.PayUnitMonth}},
	}}

	open := shift("2026-01-06", 8, 16)
	open.CheckOut = nil
	atts := &fakeAttendanceRepo{byUser: map[string][]attendance.Attendance{
		"u1": {shift("2026-01-05", 8, 16), open},
	}}
	payrolls := &fakePayrollRepo{}
	settings := &fakeSettingsRepo{settings: &payroll.SalarySettings{StandardWorkDaysPerMonth: 24}}

	svc := newTestService(users, contracts, atts, &fakeAdjustmentRepo{}, payrolls, settings)

	_, err := svc.Run(context.Background(), payroll.RunPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	// 1 complete day out of 24: 2400000 / 24 = 100000
	assert.Equal(t, "100000.00", payrolls.saved["u1"].GrossSalary.StringFixed(2))
}
