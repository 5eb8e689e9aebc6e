package leave

import (
	"context"
	"fmt"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/notification"
)

type Service struct {
	leaves        leave.LeaveRepository
	notifications notification.NotificationRepository
}

func NewService(leaves leave.LeaveRepository, notifications notification.NotificationRepository) *Service {
	return &Service{leaves: leaves, notifications: notifications}
}

func (s *Service) Create(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.leaves.Create(ctx, leave.LeaveRequest{
		UserID:      employeeID,
		RequestType: leave.RequestType(req.RequestType),
		StartDate:   req.StartDateValue,
		EndDate:     req.EndDateValue,
		RequestDate: req.RequestDateValue,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

func (s *Service) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	requests, err := s.leaves.ListByUser(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, l := range requests {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses, nil
}

func (s *Service) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := s.leaves.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, l := range requests {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses, nil
}

// Decide approves or rejects a pending request and notifies its owner.
func (s *Service) Decide(ctx context.Context, id string, approve bool) (leave.LeaveResponse, error) {
	request, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	status := leave.StatusRejected
	if approve {
		status = leave.StatusApproved
	}

	if err := s.leaves.UpdateStatus(ctx, id, status); err != nil {
		return leave.LeaveResponse{}, err
	}
	request.Status = status

	message := fmt.Sprintf("Your %s request has been %s", request.RequestType, status)
	if _, err := s.notifications.Create(ctx, notification.Notification{
		UserID:         request.UserID,
		Message:        message,
		LeaveRequestID: &request.ID,
	}); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return leave.ToResponse(request), nil
}
