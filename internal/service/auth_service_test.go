package service

import (
	"context"
	"testing"
	"time"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func newAuthFixture() (AuthService, *inMemoryUserRepo) {
	cfg := &config.Config{
		Auth: config.Auth{
			JWTSecret:   testJWTSecret,
			TokenExpiry: time.Hour,
			BcryptCost:  bcrypt.MinCost,
		},
	}
	repo := newInMemoryUserRepo()
	return NewAuthService(cfg, newTestLogger(), repo), repo
}

func TestAuthService_Register(t *testing.T) {
	svc, repo := newAuthFixture()

	err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "secret123",
	})
	require.NoError(t, err)

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.Empty(t, user.Watchlist.Data())
	assert.Empty(t, user.Predictions.Data())
	assert.True(t, user.Preferences.Data().Notifications)
	assert.False(t, user.Preferences.Data().DarkMode)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	req := dto.RegisterRequest{Email: "alice@example.com", Username: "alice", Password: "secret123"}
	require.NoError(t, svc.Register(context.Background(), req))

	err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthFixture()

	require.NoError(t, svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "secret123",
	}))

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	require.NoError(t, svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "secret123",
	}))

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
