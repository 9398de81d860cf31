package service

import (
	"stockwisely/config"
	"stockwisely/internal/repository"
	"stockwisely/pkg/cache"
	"stockwisely/pkg/logger"
)

type Service struct {
	AuthService       AuthService
	UserService       UserService
	WatchlistService  WatchlistService
	PredictionService PredictionService
	StockService      StockService
	NewsService       NewsService
	SentimentService  SentimentService
	ChatbotService    ChatbotService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	return &Service{
		AuthService:       NewAuthService(cfg, log, repo.UserRepo),
		UserService:       NewUserService(cfg, log, repo.UserRepo),
		WatchlistService:  NewWatchlistService(log, repo.UserRepo, repo.UnitOfWork),
		PredictionService: NewPredictionService(log, repo.UserRepo, repo.PredictorRepo, repo.UnitOfWork),
		StockService:      NewStockService(cfg, log, inmemoryCache, repo.YahooFinanceRepo),
		NewsService:       NewNewsService(cfg, log, inmemoryCache, repo.FinnhubNewsRepo, repo.PolygonNewsRepo),
		SentimentService:  NewSentimentService(log, repo.SentimentRepo),
		ChatbotService:    NewChatbotService(log, repo.GeminiAIRepo),
	}
}
