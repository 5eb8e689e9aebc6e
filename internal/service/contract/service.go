package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/contract"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
)

type Service struct {
	contracts contract.ContractRepository
	users     user.UserRepository
}

func NewService(contracts contract.ContractRepository, users user.UserRepository) *Service {
	return &Service{contracts: contracts, users: users}
}

// ListByUser returns the employee's contracts, newest first, each with
// a derived is_active flag for display.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]contract.ContractResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	contracts, err := s.contracts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	now := time.Now()
	responses := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, contract.ToResponse(c, now))
	}
	return responses, nil
}

func (s *Service) Create(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return contract.ContractResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		t, _ := validator.IsValidDate(*req.EndDate)
		endDate = &t
	}

	created, err := s.contracts.Create(ctx, contract.Contract{
		UserID:    req.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		PayRate:   *req.PayRate,
		PayUnit:   contract.PayUnit(req.PayUnit),
	})
	if err != nil {
		return contract.ContractResponse{}, err
	}

	return contract.ToResponse(created, time.Now()), nil
}

func (s *Service) Update(ctx context.Context, req contract.UpdateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	c, err := s.contracts.GetByID(ctx, req.ID)
	if err != nil {
		return contract.ContractResponse{}, err
	}

	if req.StartDate != nil {
		t, _ := validator.IsValidDate(*req.StartDate)
		c.StartDate = t
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			c.EndDate = nil
		} else {
			t, _ := validator.IsValidDate(*req.EndDate)
			c.EndDate = &t
		}
	}
	if req.PayRate != nil {
		c.PayRate = *req.PayRate
	}
	if req.PayUnit != nil {
		c.PayUnit = contract.PayUnit(*req.PayUnit)
	}

	if err := s.contracts.Update(ctx, c); err != nil {
		return contract.ContractResponse{}, err
	}

	return contract.ToResponse(c, time.Now()), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.contracts.Delete(ctx, id)
}
