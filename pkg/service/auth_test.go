package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *UserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	cfg := config.JwtConfig{Secret: "test-secret", Expiry: time.Hour}
	return NewAuthService(repo, cfg, testLogger()), NewUserService(repo, testLogger()), repo
}

func TestLogin(t *testing.T) {
	auth, users, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := users.Create(ctx, "alice", "secret123", domain.RoleUser)
	require.NoError(t, err)

	token, user, err := auth.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "user", claims["role"])
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	auth, users, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := users.Create(ctx, "alice", "secret123", domain.RoleUser)
	require.NoError(t, err)

	_, _, errWrong := auth.Login(ctx, "alice", "wrong")
	_, _, errUnknown := auth.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
}

func TestUserCreateValidation(t *testing.T) {
	_, users, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := users.Create(ctx, "ab", "secret123", domain.RoleUser)
	assert.Error(t, err)

	_, err = users.Create(ctx, "alice", "short", domain.RoleUser)
	assert.Error(t, err)

	_, err = users.Create(ctx, "alice", "secret123", domain.RoleUser)
	require.NoError(t, err)

	_, err = users.Create(ctx, "alice", "another-pass", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserCreateHashesPassword(t *testing.T) {
	_, users, repo := newAuthFixture(t)

	_, err := users.Create(context.Background(), "alice", "secret123", domain.RoleUser)
	require.NoError(t, err)

	stored := repo.users["alice"]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestEnsureAdmin(t *testing.T) {
	_, users, repo := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, users.EnsureAdmin(ctx, "admin", "admin123"))
	assert.Equal(t, domain.RoleAdmin, repo.users["admin"].Role)

	// A second call must not create a duplicate or overwrite the account.
	first := repo.users["admin"]
	require.NoError(t, users.EnsureAdmin(ctx, "admin", "changed"))
	assert.Equal(t, first, repo.users["admin"])
	assert.Len(t, repo.users, 1)
}
