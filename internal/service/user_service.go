package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
)

// CreateUserInput is the DTO for user creation.
type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin member"`
}

// UserService defines user management operations.
type UserService interface {
	Create(ctx context.Context, orgID uuid.UUID, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, orgID, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]domain.User, int, error)
}

type userService struct {
	userRepo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(userRepo port.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, orgID uuid.UUID, input CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("userService.Create: hashing password: %w", err)
	}

	user := &domain.User{
		OrganizationID: orgID,
		Email:          input.Email,
		PasswordHash:   string(hash),
		FullName:       input.FullName,
		Role:           domain.UserRole(input.Role),
		IsActive:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, orgID, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, orgID, userID)
}

func (s *userService) List(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]domain.User, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListByOrganization(ctx, orgID, offset, limit)
}
