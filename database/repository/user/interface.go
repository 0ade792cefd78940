package userRepo

import (
	"context"
	"errors"

	"nimtoz/models"
)

// ErrNotFound means no user matched the given identifier or email.
var ErrNotFound = errors.New("user not found")

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, q models.PageQuery) ([]models.User, int64, error)
	Count(ctx context.Context) (int64, error)

	// TopBookers ranks users by how many bookings they have submitted.
	TopBookers(ctx context.Context, limit int) ([]models.TopBooker, error)
}
