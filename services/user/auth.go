package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nimtoz/config"
	userRepo "nimtoz/database/repository/user"
	"nimtoz/models"
	"nimtoz/services/notification"
	"nimtoz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authentication failures surfaced to the handlers.
var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid or revoked refresh token")
	ErrEmailTaken         = errors.New("email already registered")
)

func refreshKey(userID string) string {
	return fmt.Sprintf("refresh:%s", userID)
}

// Register creates a new account with a bcrypt-hashed password. New accounts
// always start with the USER role; promotion is a separate admin update.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if _, err := s.Repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email %s: %w", req.Email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:          uuid.New().String(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    string(hashed),
		PhoneNumber: req.PhoneNumber,
		Role:        models.RoleUser,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Login verifies the password and issues a fresh token pair. The hashed
// refresh token is stored in the auth cache for the refresh TTL so a stolen
// token can be revoked by deleting the key.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*models.AuthTokens, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(ctx, u)
}

// Refresh validates the presented refresh token against the stored copy and
// rotates the pair.
func (s *DefaultUserService) Refresh(ctx context.Context, refreshToken string) (*models.AuthTokens, error) {
	userID, err := utils.SubjectFromRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	stored, err := s.AuthCache.Get(ctx, refreshKey(userID)).Result()
	if err != nil || stored != utils.HashToken(refreshToken) {
		return nil, ErrInvalidToken
	}

	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	return s.issueTokens(ctx, u)
}

func (s *DefaultUserService) issueTokens(ctx context.Context, u *models.User) (*models.AuthTokens, error) {
	access, err := utils.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := utils.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	ttl := time.Duration(config.AppConfig.RefreshTokenTTLHr) * time.Hour
	if err := s.AuthCache.Set(ctx, refreshKey(u.ID), utils.HashToken(refresh), ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &models.AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         u,
	}, nil
}

// ForgotPassword issues a single-use reset token and mails it to the account
// email. An unknown email returns ErrNotFound; the handler decides whether to
// reveal that to the caller.
func (s *DefaultUserService) ForgotPassword(ctx context.Context, email string) error {
	logger := utils.GetLogger()

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	token, err := utils.IssueResetToken(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	payload := notification.PasswordResetPayload{
		Email:     u.Email,
		FirstName: u.FirstName,
		Token:     token,
	}
	if err := s.Notifier.EnqueuePasswordReset(ctx, payload); err != nil {
		logger.Error("Failed to enqueue password reset email",
			zap.String("email", email), zap.Error(err))
		return fmt.Errorf("failed to queue reset email: %w", err)
	}
	return nil
}

// ResetPassword consumes the reset token and replaces the password hash. The
// stored refresh token is revoked so existing sessions die with the old
// password.
func (s *DefaultUserService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	if err := utils.ConsumeResetToken(ctx, email, token); err != nil {
		return ErrInvalidToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdatePassword(ctx, u.ID, string(hashed)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.AuthCache.Del(ctx, refreshKey(u.ID)).Err(); err != nil {
		utils.GetLogger().Warn("Failed to revoke refresh token after password reset",
			zap.String("userID", u.ID), zap.Error(err))
	}
	return nil
}
