package service

import (
	"context"
	"fmt"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/internal/repository"
	"stockwisely/pkg/cache"
	"stockwisely/pkg/logger"
)

type StockService interface {
	GetStock(ctx context.Context, ticker string) (*dto.StockSnapshot, error)
}

type stockService struct {
	cfg       *config.Config
	log       *logger.Logger
	cache     cache.Cache
	yahooRepo repository.YahooFinanceRepository
}

func NewStockService(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache, yahooRepo repository.YahooFinanceRepository) StockService {
	return &stockService{
		cfg:       cfg,
		log:       log,
		cache:     inmemoryCache,
		yahooRepo: yahooRepo,
	}
}

func (s *stockService) GetStock(ctx context.Context, ticker string) (*dto.StockSnapshot, error) {
	key := stockSnapshotKey(ticker)
	if cached, found := s.cache.Get(key); found {
		if snapshot, ok := cached.(*dto.StockSnapshot); ok {
			return snapshot, nil
		}
	}

	snapshot, err := s.yahooRepo.GetSnapshot(ctx, ticker)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, snapshot, s.cfg.Cache.StockSnapshotTTL)
	return snapshot, nil
}

func stockSnapshotKey(ticker string) string {
	return fmt.Sprintf("stock_snapshot:%s", ticker)
}
