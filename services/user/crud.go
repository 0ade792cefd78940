package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "nimtoz/database/repository/user"
	"nimtoz/models"
)

// GetUser returns one account by id.
func (s *DefaultUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return u, nil
}

// ListUsers returns a page of accounts with the total match count.
func (s *DefaultUserService) ListUsers(ctx context.Context, q models.PageQuery) ([]models.User, int64, error) {
	users, total, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// UpdateUser applies the non-empty fields of req to the account.
func (s *DefaultUserService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.PhoneNumber != "" {
		u.PhoneNumber = req.PhoneNumber
	}
	if req.Role != "" {
		switch req.Role {
		case models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin:
			u.Role = req.Role
		default:
			return nil, fmt.Errorf("unknown role %q", req.Role)
		}
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return u, nil
}

// DeleteUser removes an account entirely.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

// TopBookers ranks users by submitted booking count for the dashboard.
func (s *DefaultUserService) TopBookers(ctx context.Context, limit int) ([]models.TopBooker, error) {
	if limit <= 0 {
		limit = 5
	}
	bookers, err := s.Repo.TopBookers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top bookers: %w", err)
	}
	return bookers, nil
}
