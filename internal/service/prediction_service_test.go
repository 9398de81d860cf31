package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stockwisely/internal/dto"
	"stockwisely/internal/model"
	"stockwisely/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePredictorRepo struct {
	result *dto.PredictionResult
	err    error
	calls  int
}

func (f *fakePredictorRepo) Predict(ctx context.Context, ticker, date string) (*dto.PredictionResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newPredictionFixture(predictor *fakePredictorRepo) (*predictionService, *inMemoryUserRepo) {
	repo := newInMemoryUserRepo()
	svc := NewPredictionService(newTestLogger(), repo, predictor, &fakeUnitOfWork{}).(*predictionService)
	return svc, repo
}

func TestPredictionService_Predict_AppendsHistory(t *testing.T) {
	predictor := &fakePredictorRepo{
		result: &dto.PredictionResult{PredictedPrice: 187.5, Accuracy: 92.3, GraphPath: "/graphs/AAPL.png"},
	}
	svc, repo := newPredictionFixture(predictor)
	seedUser(repo, "alice@example.com")

	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	result, err := svc.Predict(context.Background(), dto.PredictRequest{
		Ticker:         "AAPL",
		PredictionDate: "2024-07-01",
		UserEmail:      "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 187.5, result.PredictedPrice)

	records, err := svc.List(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AAPL", records[0].Ticker)
	assert.Equal(t, "2024-07-01", records[0].PredictionDate)
	assert.Equal(t, 187.5, records[0].PredictedPrice)
	assert.Equal(t, 92.3, records[0].Accuracy)
	assert.Equal(t, "/graphs/AAPL.png", records[0].GraphPath)
	assert.Equal(t, model.PredictionResultPending, records[0].Result)
	assert.Equal(t, created, records[0].CreatedAt)
}

func TestPredictionService_Predict_AnonymousSkipsHistory(t *testing.T) {
	predictor := &fakePredictorRepo{
		result: &dto.PredictionResult{PredictedPrice: 42},
	}
	svc, repo := newPredictionFixture(predictor)
	seedUser(repo, "alice@example.com")

	result, err := svc.Predict(context.Background(), dto.PredictRequest{
		Ticker:         "AAPL",
		PredictionDate: "2024-07-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 42.0, result.PredictedPrice)

	records, err := svc.List(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPredictionService_Predict_PredictorFailure(t *testing.T) {
	predictor := &fakePredictorRepo{
		err: fmt.Errorf("predictor script failed: %w", apperrors.ErrUpstream),
	}
	svc, repo := newPredictionFixture(predictor)
	seedUser(repo, "alice@example.com")

	_, err := svc.Predict(context.Background(), dto.PredictRequest{
		Ticker:         "AAPL",
		PredictionDate: "2024-07-01",
		UserEmail:      "alice@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrUpstream)

	records, err := svc.List(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPredictionService_Predict_UnknownUserStillSucceeds(t *testing.T) {
	// The history write is best-effort: a prediction for an email without an
	// account returns the result anyway.
	predictor := &fakePredictorRepo{
		result: &dto.PredictionResult{PredictedPrice: 42},
	}
	svc, _ := newPredictionFixture(predictor)

	result, err := svc.Predict(context.Background(), dto.PredictRequest{
		Ticker:         "AAPL",
		PredictionDate: "2024-07-01",
		UserEmail:      "ghost@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 42.0, result.PredictedPrice)
}

func TestPredictionService_Append_UnknownUserSwallowed(t *testing.T) {
	svc, _ := newPredictionFixture(&fakePredictorRepo{})

	err := svc.Append(context.Background(), "ghost@example.com", dto.PredictionInput{Ticker: "AAPL"})
	assert.NoError(t, err)
}

func TestPredictionService_List_NewestFirst(t *testing.T) {
	svc, repo := newPredictionFixture(&fakePredictorRepo{})
	seedUser(repo, "alice@example.com")

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, ticker := range []string{"AAPL", "TSLA", "GOOGL"} {
		created := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return created }
		require.NoError(t, svc.Append(context.Background(), "alice@example.com", dto.PredictionInput{Ticker: ticker}))
	}

	records, err := svc.List(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "GOOGL", records[0].Ticker)
	assert.Equal(t, "TSLA", records[1].Ticker)
	assert.Equal(t, "AAPL", records[2].Ticker)
}

func TestPredictionService_ResultTransition(t *testing.T) {
	svc, repo := newPredictionFixture(&fakePredictorRepo{})
	seedUser(repo, "alice@example.com")

	require.NoError(t, svc.Append(context.Background(), "alice@example.com", dto.PredictionInput{Ticker: "AAPL"}))

	err := repo.UpdatePredictionResult(context.Background(), "alice@example.com", 0, model.PredictionResultSuccess)
	require.NoError(t, err)

	records, err := svc.List(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.PredictionResultSuccess, records[0].Result)

	err = repo.UpdatePredictionResult(context.Background(), "alice@example.com", 5, model.PredictionResultFailed)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
