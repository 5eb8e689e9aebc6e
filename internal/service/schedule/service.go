package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/schedule"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
)

type Service struct {
	shifts      schedule.ShiftRepository
	assignments schedule.AssignmentRepository
	users       user.UserRepository
}

func NewService(shifts schedule.ShiftRepository, assignments schedule.AssignmentRepository, users user.UserRepository) *Service {
	return &Service{shifts: shifts, assignments: assignments, users: users}
}

func (s *Service) CreateShift(ctx context.Context, req schedule.CreateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	start, _ := validator.IsValidTimeOfDay(req.StartTime)
	end, _ := validator.IsValidTimeOfDay(req.EndTime)

	created, err := s.shifts.Create(ctx, schedule.Shift{
		Name:         req.Name,
		StartMinutes: start.Hour()*60 + start.Minute(),
		EndMinutes:   end.Hour()*60 + end.Minute(),
	})
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	return schedule.ToShiftResponse(created), nil
}

func (s *Service) ListShifts(ctx context.Context) ([]schedule.ShiftResponse, error) {
	shifts, err := s.shifts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, schedule.ToShiftResponse(shift))
	}
	return responses, nil
}

func (s *Service) UpdateShift(ctx context.Context, id string, req schedule.CreateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	start, _ := validator.IsValidTimeOfDay(req.StartTime)
	end, _ := validator.IsValidTimeOfDay(req.EndTime)
	shift.Name = req.Name
	shift.StartMinutes = start.Hour()*60 + start.Minute()
	shift.EndMinutes = end.Hour()*60 + end.Minute()

	if err := s.shifts.Update(ctx, shift); err != nil {
		return schedule.ShiftResponse{}, err
	}

	return schedule.ToShiftResponse(shift), nil
}

// DeleteShift refuses to remove a shift that any assignment still
// references.
func (s *Service) DeleteShift(ctx context.Context, id string) error {
	inUse, err := s.shifts.HasAssignments(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return schedule.ErrShiftInUse
	}
	return s.shifts.Delete(ctx, id)
}

func (s *Service) Assign(ctx context.Context, req schedule.AssignShiftRequest) (schedule.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignmentResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return schedule.AssignmentResponse{}, err
	}
	if _, err := s.shifts.GetByID(ctx, req.ShiftID); err != nil {
		return schedule.AssignmentResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.assignments.Create(ctx, schedule.Assignment{
		UserID:  req.UserID,
		ShiftID: req.ShiftID,
		Date:    date,
	})
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}

	return schedule.ToAssignmentResponse(created), nil
}

func (s *Service) ListAssignments(ctx context.Context, from, to time.Time) ([]schedule.AssignmentResponse, error) {
	assignments, err := s.assignments.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	responses := make([]schedule.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, schedule.ToAssignmentResponse(a))
	}
	return responses, nil
}

func (s *Service) DeleteAssignment(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}
