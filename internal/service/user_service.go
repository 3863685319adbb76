package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jessbook/internal/domain"
	"jessbook/internal/repository"
	"jessbook/internal/validate"
)

// UserService exposes profile operations outside the credential lifecycle.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, update repository.ProfileUpdate) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return sanitizeUser(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, update repository.ProfileUpdate) error {
	if fields := validate.Names(update.FirstName, update.LastName); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	update.FirstName = strings.TrimSpace(update.FirstName)
	update.LastName = strings.TrimSpace(update.LastName)

	if err := s.users.UpdateProfile(ctx, userID, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
