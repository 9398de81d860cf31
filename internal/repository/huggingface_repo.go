package repository

import (
	"context"
	"fmt"
	"net/http"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/httpclient"
	"stockwisely/pkg/logger"

	"github.com/cenkalti/backoff/v4"
)

type SentimentRepository interface {
	Analyze(ctx context.Context, text string) ([]dto.SentimentScore, error)
}

type huggingFaceRepository struct {
	httpClient httpclient.HTTPClient
	cfg        *config.Config
	logger     *logger.Logger
}

func NewHuggingFaceRepository(cfg *config.Config, log *logger.Logger) SentimentRepository {
	return &huggingFaceRepository{
		httpClient: httpclient.New(cfg.HuggingFace.BaseURL, cfg.HuggingFace.Timeout, cfg.HuggingFace.APIKey),
		cfg:        cfg,
		logger:     log,
	}
}

// Analyze runs the text through the hosted classification model. The inference
// API answers 503 while a cold model loads, so those responses are retried
// with exponential backoff; anything else fails immediately.
func (r *huggingFaceRepository) Analyze(ctx context.Context, text string) ([]dto.SentimentScore, error) {
	endpoint := "/" + r.cfg.HuggingFace.Model
	payload := map[string]string{"inputs": text}

	var scores []dto.SentimentScore
	operation := func() error {
		// The API returns one score list per input.
		var result [][]dto.SentimentScore
		resp, err := r.httpClient.Post(ctx, endpoint, payload, nil, &result)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to reach huggingface: %w", err))
		}

		switch {
		case resp.StatusCode == http.StatusServiceUnavailable:
			r.logger.WarnContext(ctx, "HuggingFace model still loading, retrying",
				logger.StringField("model", r.cfg.HuggingFace.Model))
			return fmt.Errorf("model loading: status %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("huggingface api returned status %d: %w", resp.StatusCode, apperrors.ErrUpstream))
		}

		if len(result) == 0 {
			return backoff.Permanent(fmt.Errorf("empty sentiment response: %w", apperrors.ErrUpstream))
		}

		scores = result[0]
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), r.cfg.HuggingFace.MaxRetries), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return nil, fmt.Errorf("failed to analyze sentiment: %w", err)
	}

	return scores, nil
}
