package notification

import (
	"context"
	"fmt"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/notification"
)

type Service struct {
	notifications notification.NotificationRepository
}

func NewService(notifications notification.NotificationRepository) *Service {
	return &Service{notifications: notifications}
}

func (s *Service) ListMine(ctx context.Context, userID string, unreadOnly bool) ([]notification.NotificationResponse, error) {
	items, err := s.notifications.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, notification.ToResponse(n))
	}
	return responses, nil
}

// MarkRead only touches the caller's own notifications.
func (s *Service) MarkRead(ctx context.Context, id string, userID string) error {
	return s.notifications.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.notifications.MarkAllRead(ctx, userID)
}
