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

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type YahooFinanceRepository interface {
	GetSnapshot(ctx context.Context, ticker string) (*dto.StockSnapshot, error)
}

type yahooFinanceRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) YahooFinanceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Yahoo.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &yahooFinanceRepository{
		httpClient:     httpclient.New(cfg.Yahoo.BaseURL, cfg.Yahoo.Timeout, ""),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

// GetSnapshot fetches the latest quote and the daily close history since the
// configured start date. The two chart calls run concurrently; the quote call
// carries the company name and market price, the history call the parallel
// prices/dates arrays.
func (r *yahooFinanceRepository) GetSnapshot(ctx context.Context, ticker string) (*dto.StockSnapshot, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var (
		quoteResp   dto.YahooFinanceResponse
		historyResp dto.YahooFinanceResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.fetchChart(gctx, ticker, map[string]string{
			"range":    "1d",
			"interval": "1d",
		}, &quoteResp)
	})
	g.Go(func() error {
		start, err := time.Parse("2006-01-02", r.cfg.Yahoo.HistoryStart)
		if err != nil {
			return fmt.Errorf("invalid history start date %q: %w", r.cfg.Yahoo.HistoryStart, err)
		}
		return r.fetchChart(gctx, ticker, map[string]string{
			"period1":  fmt.Sprintf("%d", start.Unix()),
			"period2":  fmt.Sprintf("%d", time.Now().Unix()),
			"interval": "1d",
		}, &historyResp)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(quoteResp.Chart.Result) == 0 || len(historyResp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for symbol %s: %w", ticker, apperrors.ErrUpstream)
	}

	meta := quoteResp.Chart.Result[0].Meta
	companyName := meta.ShortName
	if companyName == "" {
		companyName = meta.LongName
	}
	if companyName == "" {
		companyName = "Unknown"
	}

	history := historyResp.Chart.Result[0]
	if len(history.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data for symbol %s: %w", ticker, apperrors.ErrUpstream)
	}

	closes := history.Indicators.Quote[0].Close
	prices := make([]float64, 0, len(history.Timestamp))
	dates := make([]string, 0, len(history.Timestamp))
	for i, ts := range history.Timestamp {
		if i >= len(closes) || closes[i] == 0 {
			continue
		}
		prices = append(prices, closes[i])
		dates = append(dates, time.Unix(ts, 0).UTC().Format("2006-01-02"))
	}

	return &dto.StockSnapshot{
		CompanyName:  companyName,
		CurrentPrice: meta.RegularMarketPrice,
		Prices:       prices,
		Dates:        dates,
	}, nil
}

func (r *yahooFinanceRepository) fetchChart(ctx context.Context, ticker string, queryParams map[string]string, result *dto.YahooFinanceResponse) error {
	headers := map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
		"Accept":          "application/json, text/plain, */*",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         "https://finance.yahoo.com/",
	}

	resp, err := r.httpClient.Get(ctx, "/"+ticker, queryParams, headers, result)
	if err != nil {
		return fmt.Errorf("failed to fetch data from yahoo finance: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Yahoo Finance API returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("ticker", ticker))
		return fmt.Errorf("yahoo finance api returned status %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}

	if result.Chart.Error != nil {
		return fmt.Errorf("yahoo finance api error %v: %w", result.Chart.Error, apperrors.ErrUpstream)
	}

	return nil
}
