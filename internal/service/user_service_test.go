package service

import (
	"context"
	"testing"
	"time"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/internal/model"
	"stockwisely/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture() (UserService, *inMemoryUserRepo) {
	cfg := &config.Config{
		Auth: config.Auth{BcryptCost: bcrypt.MinCost},
	}
	repo := newInMemoryUserRepo()
	return NewUserService(cfg, newTestLogger(), repo), repo
}

func TestUserService_GetProfile(t *testing.T) {
	svc, repo := newUserFixture()
	seedUser(repo, "alice@example.com")

	profile, err := svc.GetProfile(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "tester", profile.Username)
	assert.NotNil(t, profile.Watchlist)
	assert.Empty(t, profile.Watchlist)
	assert.True(t, profile.Preferences.Notifications)
	assert.False(t, profile.Preferences.DarkMode)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.GetProfile(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, repo := newUserFixture()
	seedUser(repo, "alice@example.com")

	err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{
		Email:    "alice@example.com",
		Username: "alice2",
		NewEmail: "alice2@example.com",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), "alice2@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice2", profile.Username)

	_, err = svc.GetProfile(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	svc, _ := newUserFixture()

	err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{
		Email:    "ghost@example.com",
		Username: "nobody",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_UpdatePassword(t *testing.T) {
	svc, repo := newUserFixture()
	seedUser(repo, "alice@example.com")

	err := svc.UpdatePassword(context.Background(), dto.UpdatePasswordRequest{
		Email:    "alice@example.com",
		Password: "new-secret",
	})
	require.NoError(t, err)

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-secret")))
}

func TestUserService_Activity_EmptyHistory(t *testing.T) {
	svc, repo := newUserFixture()
	seedUser(repo, "alice@example.com")

	summary, err := svc.Activity(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalPredictions)
	assert.Equal(t, 0, summary.SuccessfulPredictions)
	assert.Equal(t, 0.0, summary.AvgAccuracy)
	assert.Equal(t, 0, summary.WatchlistItems)
}

func TestUserService_Activity(t *testing.T) {
	svc, repo := newUserFixture()
	user := seedUser(repo, "alice@example.com")

	user.Watchlist = model.NewWatchlist([]model.WatchlistEntry{
		{Ticker: "AAPL"},
		{Ticker: "TSLA"},
	})
	user.Predictions = model.NewPredictionList([]model.PredictionRecord{
		{Ticker: "AAPL", Accuracy: 90.555, CreatedAt: time.Now(), Result: model.PredictionResultPending},
		{Ticker: "TSLA", Accuracy: 80, CreatedAt: time.Now(), Result: model.PredictionResultPending},
	})
	require.NoError(t, repo.Save(context.Background(), user))
	require.NoError(t, repo.UpdatePredictionResult(context.Background(), "alice@example.com", 0, model.PredictionResultSuccess))

	summary, err := svc.Activity(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalPredictions)
	assert.Equal(t, 1, summary.SuccessfulPredictions)
	assert.Equal(t, 85.28, summary.AvgAccuracy)
	assert.Equal(t, 2, summary.WatchlistItems)
}
