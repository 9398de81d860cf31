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
)

type PolygonNewsRepository interface {
	ReferenceNews(ctx context.Context, ticker string) ([]dto.PolygonArticle, error)
}

type polygonNewsRepository struct {
	httpClient httpclient.HTTPClient
	cfg        *config.Config
	logger     *logger.Logger
}

func NewPolygonNewsRepository(cfg *config.Config, log *logger.Logger) PolygonNewsRepository {
	return &polygonNewsRepository{
		httpClient: httpclient.New(cfg.Polygon.BaseURL, cfg.Polygon.Timeout, ""),
		cfg:        cfg,
		logger:     log,
	}
}

// ReferenceNews returns one page of recent articles for the ticker, newest
// first. The rotation cursor over this page lives in the news service.
func (r *polygonNewsRepository) ReferenceNews(ctx context.Context, ticker string) ([]dto.PolygonArticle, error) {
	if r.cfg.Polygon.APIKey == "" {
		return nil, fmt.Errorf("polygon api key not configured: %w", apperrors.ErrUpstream)
	}

	queryParams := map[string]string{
		"limit":  fmt.Sprintf("%d", r.cfg.Polygon.PageLimit),
		"order":  "desc",
		"ticker": ticker,
		"apiKey": r.cfg.Polygon.APIKey,
	}

	var newsResp dto.PolygonNewsResponse
	resp, err := r.httpClient.Get(ctx, "/v2/reference/news", queryParams, nil, &newsResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news from polygon: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Polygon API returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("ticker", ticker))
		return nil, fmt.Errorf("polygon api returned status %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}

	return newsResp.Results, nil
}
