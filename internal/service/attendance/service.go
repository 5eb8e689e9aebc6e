package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/schedule"
)

type Service struct {
	attendances attendance.AttendanceRepository
	assignments schedule.AssignmentRepository
	shifts      schedule.ShiftRepository
	location    *time.Location

	// now is swappable in tests
	now func() time.Time
}

func NewService(
	attendances attendance.AttendanceRepository,
	assignments schedule.AssignmentRepository,
	shifts schedule.ShiftRepository,
	location *time.Location,
) *Service {
	return &Service{
		attendances: attendances,
		assignments: assignments,
		shifts:      shifts,
		location:    location,
		now:         time.Now,
	}
}

// CheckIn opens a new shift for the employee. At most one shift may be
// open at a time, across all dates, so a forgotten check-out blocks new
// check-ins until it is closed or edited.
func (s *Service) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	open, err := s.attendances.GetOpenShift(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check for open shift: %w", err)
	}
	if open != nil {
		return attendance.AttendanceResponse{}, attendance.ErrShiftAlreadyOpen
	}

	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	att := attendance.Attendance{
		UserID:  employeeID,
		Date:    today,
		CheckIn: &now,
	}

	// Attach today's scheduled shift when one exists. No schedule is a
	// valid state: the check-in simply carries no shift or lateness.
	assignment, err := s.assignments.GetForUserAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up shift assignment: %w", err)
	}
	if assignment != nil {
		shift, err := s.shifts.GetByID(ctx, assignment.ShiftID)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to get assigned shift: %w", err)
		}
		att.ShiftID = &assignment.ShiftID

		scheduledStart := shift.StartOn(now, s.location)
		if late := int(now.Sub(scheduledStart).Minutes()); late > 0 {
			att.LateMinutes = &late
		}
	}

	created, err := s.attendances.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// CheckOut closes the employee's most recently opened shift. Checking
// out with nothing open is not an error; the response carries a warning
// and no row changes.
func (s *Service) CheckOut(ctx context.Context, employeeID string) (attendance.CheckOutResponse, error) {
	open, err := s.attendances.GetOpenShift(ctx, employeeID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to check for open shift: %w", err)
	}
	if open == nil {
		return attendance.CheckOutResponse{Warning: "no open shift to check out from"}, nil
	}

	now := s.now().In(s.location)
	open.CheckOut = &now

	if err := s.attendances.Update(ctx, *open); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	resp := attendance.ToResponse(*open)
	return attendance.CheckOutResponse{Attendance: &resp}, nil
}

// Edit lets an admin overwrite any row's timestamps. Clearing check_out
// re-opens the shift.
func (s *Service) Edit(ctx context.Context, req attendance.EditAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendances.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.CheckIn != nil {
		att.CheckIn = req.CheckInTime
	}
	if req.CheckOut != nil {
		att.CheckOut = req.CheckOutTime
	}
	if req.Date != nil && req.DateValue != nil {
		att.Date = *req.DateValue
	}

	if err := s.attendances.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(att), nil
}

func (s *Service) MyHistory(ctx context.Context, employeeID string, limit int) ([]attendance.AttendanceResponse, error) {
	rows, err := s.attendances.ListMine(ctx, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, attendance.ToResponse(row))
	}
	return responses, nil
}

func (s *Service) ListAll(ctx context.Context, page, limit int) ([]attendance.AttendanceResponse, int64, error) {
	rows, total, err := s.attendances.ListAll(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, attendance.ToResponse(row))
	}
	return responses, total, nil
}
