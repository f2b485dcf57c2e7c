package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	users  repository.UserRepository
	cfg    config.JwtConfig
	logger *slog.Logger
}

func NewAuthService(users repository.UserRepository, cfg config.JwtConfig, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, cfg: cfg, logger: logger}
}

// Login checks the credentials and returns a signed token with the user.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("failed login attempt", "username", username)
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// GenerateToken signs a token carrying the user's identity and role.
func (s *AuthService) GenerateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.cfg.Expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// HashPassword returns a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
