package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/schedule"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	rows map[string]attendance.Attendance
	seq  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.seq++
	a.ID = fmt.Sprintf("att-%d", f.seq)
	f.rows[a.ID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	a, ok := f.rows[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

// GetOpenShift mirrors the SQL ordering (check_in DESC NULLS LAST): a
// row whose check_in was cleared by an edit never shadows a genuine
// open shift.
func (f *fakeAttendanceRepo) GetOpenShift(ctx context.Context, userID string) (*attendance.Attendance, error) {
	var newest, nullCheckIn *attendance.Attendance
	for id := range f.rows {
		a := f.rows[id]
		if a.UserID != userID || a.CheckOut != nil {
			continue
		}
		copied := a
		if a.CheckIn == nil {
			nullCheckIn = &copied
			continue
		}
		if newest == nil || a.CheckIn.After(*newest.CheckIn) {
			newest = &copied
		}
	}
	if newest == nil {
		return nullCheckIn, nil
	}
	return newest, nil
}

func (f *fakeAttendanceRepo) GetByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error {
	if _, ok := f.rows[a.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.rows[a.ID] = a
	return nil
}

func (f *fakeAttendanceRepo) ListMine(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListAll(ctx context.Context, page, limit int) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

type fakeAssignmentRepo struct {
	assignment *schedule.Assignment
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	return a, nil
}
func (f *fakeAssignmentRepo) GetForUserAndDate(ctx context.Context, userID string, date time.Time) (*schedule.Assignment, error) {
	return f.assignment, nil
}
func (f *fakeAssignmentRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]schedule.Assignment, error) {
	return nil, nil
}
func (f *fakeAssignmentRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeShiftRepo struct {
	shift schedule.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s schedule.Shift) (schedule.Shift, error) {
	return s, nil
}
func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	if f.shift.ID != id {
		return schedule.Shift{}, schedule.ErrShiftNotFound
	}
	return f.shift, nil
}
func (f *fakeShiftRepo) List(ctx context.Context) ([]schedule.Shift, error)          { return nil, nil }
func (f *fakeShiftRepo) Update(ctx context.Context, s schedule.Shift) error          { return nil }
func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error                 { return nil }
func (f *fakeShiftRepo) HasAssignments(ctx context.Context, shiftID string) (bool, error) {
	return false, nil
}

func newTestService(repo *fakeAttendanceRepo, assignments *fakeAssignmentRepo, shifts *fakeShiftRepo, now time.Time) *Service {
	svc := NewService(repo, assignments, shifts, time.UTC)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCheckInCreatesOpenShift(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2026, 1, 5, 8, 15, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{}, now)

	resp, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05", resp.Date)
	require.NotNil(t, resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.Nil(t, resp.LateMinutes)
}

func TestCheckInBlockedByOpenShift(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{}, now)

	_, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "u1")
	assert.ErrorIs(t, err, attendance.ErrShiftAlreadyOpen)
}

func TestCheckInBlockedByOpenShiftFromAnotherDay(t *testing.T) {
	repo := newFakeAttendanceRepo()

	// Yesterday's shift was never closed.
	svcYesterday := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{},
		time.Date(2026, 1, 4, 8, 0, 0, 0, time.UTC))
	_, err := svcYesterday.CheckIn(context.Background(), "u1")
	require.NoError(t, err)

	svcToday := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{},
		time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC))
	_, err = svcToday.CheckIn(context.Background(), "u1")
	assert.ErrorIs(t, err, attendance.ErrShiftAlreadyOpen)
}

func TestCheckInRecordsLateness(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shift: schedule.Shift{ID: "s1", Name: "Morning", StartMinutes: 8 * 60, EndMinutes: 16 * 60}}
	assignments := &fakeAssignmentRepo{assignment: &schedule.Assignment{ID: "a1", UserID: "u1", ShiftID: "s1"}}

	// 25 minutes after the scheduled 08:00 start
	now := time.Date(2026, 1, 5, 8, 25, 0, 0, time.UTC)
	svc := newTestService(repo, assignments, shifts, now)

	resp, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)

	require.NotNil(t, resp.ShiftID)
	assert.Equal(t, "s1", *resp.ShiftID)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 25, *resp.LateMinutes)
}

func TestCheckInEarlyIsNotLate(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shift: schedule.Shift{ID: "s1", StartMinutes: 8 * 60, EndMinutes: 16 * 60}}
	assignments := &fakeAssignmentRepo{assignment: &schedule.Assignment{ID: "a1", UserID: "u1", ShiftID: "s1"}}

	now := time.Date(2026, 1, 5, 7, 45, 0, 0, time.UTC)
	svc := newTestService(repo, assignments, shifts, now)

	resp, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, resp.LateMinutes)
}

func TestCheckOutClosesShift(t *testing.T) {
	repo := newFakeAttendanceRepo()
	checkIn := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{}, checkIn)

	_, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)

	svc.now = func() time.Time { return checkIn.Add(8*time.Hour + 30*time.Minute) }

	resp, err := svc.CheckOut(context.Background(), "u1")
	require.NoError(t, err)

	assert.Empty(t, resp.Warning)
	require.NotNil(t, resp.Attendance)
	require.NotNil(t, resp.Attendance.CheckOut)
	assert.InDelta(t, 8.5, resp.Attendance.WorkedHours, 1e-9)

	// The shift is closed; a new check-in is possible again.
	_, err = svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)
}

func TestCheckOutWithNothingOpenWarns(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{},
		time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC))

	resp, err := svc.CheckOut(context.Background(), "u1")
	require.NoError(t, err, "a stray check-out is a warning, not an error")

	assert.NotEmpty(t, resp.Warning)
	assert.Nil(t, resp.Attendance)
	assert.Empty(t, repo.rows)
}

func TestCheckOutSkipsRowsWithClearedCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	t0 := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{}, t0)

	cleared, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)
	svc.now = func() time.Time { return t0.Add(8 * time.Hour) }
	_, err = svc.CheckOut(context.Background(), "u1")
	require.NoError(t, err)

	svc.now = func() time.Time { return t0.Add(24 * time.Hour) }
	genuine, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)

	// An admin wipes both timestamps on the old row, leaving an open
	// row with no check_in alongside the genuine open shift.
	empty := ""
	_, err = svc.Edit(context.Background(), attendance.EditAttendanceRequest{
		ID:       cleared.ID,
		CheckIn:  &empty,
		CheckOut: &empty,
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return t0.Add(32 * time.Hour) }
	resp, err := svc.CheckOut(context.Background(), "u1")
	require.NoError(t, err)

	require.NotNil(t, resp.Attendance)
	assert.Equal(t, genuine.ID, resp.Attendance.ID)

	// The wiped row stays untouched.
	wiped := repo.rows[cleared.ID]
	assert.Nil(t, wiped.CheckIn)
	assert.Nil(t, wiped.CheckOut)
}

func TestEditRejectsBadTimestamp(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{}, now)

	created, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)

	bad := "not-a-timestamp"
	_, err = svc.Edit(context.Background(), attendance.EditAttendanceRequest{ID: created.ID, CheckOut: &bad})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	// Row untouched
	stored := repo.rows[created.ID]
	assert.Nil(t, stored.CheckOut)
}

func TestEditClearingCheckOutReopensShift(t *testing.T) {
	repo := newFakeAttendanceRepo()
	checkIn := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{}, checkIn)

	created, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)

	svc.now = func() time.Time { return checkIn.Add(8 * time.Hour) }
	_, err = svc.CheckOut(context.Background(), "u1")
	require.NoError(t, err)

	empty := ""
	_, err = svc.Edit(context.Background(), attendance.EditAttendanceRequest{ID: created.ID, CheckOut: &empty})
	require.NoError(t, err)

	open, err := repo.GetOpenShift(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, open, "clearing check_out reopens the shift")
	assert.Equal(t, created.ID, open.ID)
}

func TestEditOverwritesTimes(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeAssignmentRepo{}, &fakeShiftRepo{}, now)

	created, err := svc.CheckIn(context.Background(), "u1")
	require.NoError(t, err)

	in := "2026-01-05T09:00"
	out := "2026-01-05T17:30"
	date := "2026-01-05"
	resp, err := svc.Edit(context.Background(), attendance.EditAttendanceRequest{
		ID:       created.ID,
		CheckIn:  &in,
		CheckOut: &out,
		Date:     &date,
	})
	require.NoError(t, err)
	assert.InDelta(t, 8.5, resp.WorkedHours, 1e-9)
}
