package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/repository"
)

// UserService manages household members.
type UserService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

func NewUserService(users repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers a new user with a hashed password.
func (s *UserService) Create(ctx context.Context, username, password string, role domain.Role) (domain.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return domain.User{}, errors.New("username must be at least 3 characters")
	}
	if len(password) < 6 {
		return domain.User{}, errors.New("password must be at least 6 characters")
	}
	if role == "" {
		role = domain.RoleUser
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return domain.User{}, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return domain.User{}, err
	}
	s.logger.Info("user created", "username", username, "role", role)
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

// EnsureAdmin creates the default admin account when no user with the admin
// role exists yet, mirroring the first-run bootstrap of the original
// database.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			return nil
		}
	}

	if _, err := s.Create(ctx, username, password, domain.RoleAdmin); err != nil {
		return err
	}
	s.logger.Info("default admin user created", "username", username)
	return nil
}
