package user

import (
	"context"

	userRepo "nimtoz/database/repository/user"
	"nimtoz/models"
	"nimtoz/services/notification"

	"github.com/go-redis/redis/v8"
)

// UserService defines account management and authentication.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	// Login verifies credentials and issues an access/refresh token pair.
	// The refresh token is stored server-side so it can be revoked.
	Login(ctx context.Context, email, password string) (*models.AuthTokens, error)
	// Refresh rotates the token pair; the presented refresh token must match
	// the stored one.
	Refresh(ctx context.Context, refreshToken string) (*models.AuthTokens, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error

	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, q models.PageQuery) ([]models.User, int64, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	TopBookers(ctx context.Context, limit int) ([]models.TopBooker, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Notifier notification.Producer
	// AuthCache stores issued refresh tokens keyed by user id.
	AuthCache redis.Cmdable
}
