package employee

import (
	"context"
	"fmt"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users user.UserRepository
}

func NewService(users user.UserRepository) *Service {
	return &Service{users: users}
}

// List returns the employee directory: every non-admin account.
func (s *Service) List(ctx context.Context) ([]user.UserResponse, error) {
	employees, err := s.users.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, user.ToResponse(e))
	}
	return responses, nil
}

func (s *Service) Create(ctx context.Context, req user.CreateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	created, err := s.users.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		Email:        req.Email,
		FullName:     req.FullName,
		Gender:       req.Gender,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// UpdateProfile lets a user change their own contact fields. Username,
// password and role are not editable here.
func (s *Service) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.users.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil {
		u.Email = req.Email
	}
	if req.FullName != nil {
		u.FullName = req.FullName
	}
	if req.Gender != nil {
		u.Gender = req.Gender
	}

	if err := s.users.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(u), nil
}
