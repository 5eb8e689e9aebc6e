package adjustment

import (
	"context"
	"fmt"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/adjustment"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
)

type Service struct {
	adjustments adjustment.AdjustmentRepository
	users       user.UserRepository
}

func NewService(adjustments adjustment.AdjustmentRepository, users user.UserRepository) *Service {
	return &Service{adjustments: adjustments, users: users}
}

func (s *Service) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	created, err := s.adjustments.Create(ctx, adjustment.Adjustment{
		UserID: req.UserID,
		Kind:   adjustment.Kind(req.Kind),
		Month:  req.Month,
		Year:   req.Year,
		Amount: *req.Amount,
		Reason: req.Reason,
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	return adjustment.ToResponse(created), nil
}

func (s *Service) ListByUserAndPeriod(ctx context.Context, userID string, month, year int) ([]adjustment.AdjustmentResponse, error) {
	if month < 1 || month > 12 || year <= 0 {
		return nil, validator.ValidationErrors{
			{Field: "period", Message: "month must be 1-12 and year positive"},
		}
	}

	adjustments, err := s.adjustments.ListByUserAndPeriod(ctx, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	responses := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		responses = append(responses, adjustment.ToResponse(a))
	}
	return responses, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.adjustments.Delete(ctx, id)
}
