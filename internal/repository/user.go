package repository

import (
	"context"

	"jessbook/internal/domain"
)

// ProfileUpdate carries the profile fields a user may change about themselves.
type ProfileUpdate struct {
	FirstName  string
	LastName   string
	City       string
	Website    string
	ProfilePic string
	CoverPic   string
}

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) error
}
