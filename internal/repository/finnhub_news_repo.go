package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/httpclient"
	"stockwisely/pkg/logger"

	"golang.org/x/time/rate"
)

type FinnhubNewsRepository interface {
	GeneralNews(ctx context.Context) ([]dto.NewsArticle, error)
	CompanyNews(ctx context.Context, ticker string, from, to time.Time) ([]dto.NewsArticle, error)
}

type finnhubNewsRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewFinnhubNewsRepository(cfg *config.Config, log *logger.Logger) FinnhubNewsRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Finnhub.MaxRequestPerMinute)

	return &finnhubNewsRepository{
		httpClient:     httpclient.New(cfg.Finnhub.BaseURL, cfg.Finnhub.Timeout, ""),
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

func (r *finnhubNewsRepository) GeneralNews(ctx context.Context) ([]dto.NewsArticle, error) {
	return r.fetch(ctx, "/news", map[string]string{
		"category": "general",
	})
}

func (r *finnhubNewsRepository) CompanyNews(ctx context.Context, ticker string, from, to time.Time) ([]dto.NewsArticle, error) {
	return r.fetch(ctx, "/company-news", map[string]string{
		"symbol": ticker,
		"from":   from.Format("2006-01-02"),
		"to":     to.Format("2006-01-02"),
	})
}

func (r *finnhubNewsRepository) fetch(ctx context.Context, endpoint string, queryParams map[string]string) ([]dto.NewsArticle, error) {
	if r.cfg.Finnhub.APIKey == "" {
		return nil, fmt.Errorf("finnhub api key not configured: %w", apperrors.ErrUpstream)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	queryParams["token"] = r.cfg.Finnhub.APIKey

	var articles []dto.NewsArticle
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, &articles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news from finnhub: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Finnhub API returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("endpoint", endpoint))
		return nil, fmt.Errorf("finnhub api returned status %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}

	return articles, nil
}
