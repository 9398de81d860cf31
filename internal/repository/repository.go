package repository

import (
	"stockwisely/config"
	"stockwisely/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	UserRepo         UserRepository
	YahooFinanceRepo YahooFinanceRepository
	FinnhubNewsRepo  FinnhubNewsRepository
	PolygonNewsRepo  PolygonNewsRepository
	SentimentRepo    SentimentRepository
	GeminiAIRepo     AIRepository
	PredictorRepo    PredictorRepository
	UnitOfWork       UnitOfWork
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	geminiAIRepo, err := NewGeminiAIRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		UserRepo:         NewUserRepository(db),
		YahooFinanceRepo: NewYahooFinanceRepository(cfg, log),
		FinnhubNewsRepo:  NewFinnhubNewsRepository(cfg, log),
		PolygonNewsRepo:  NewPolygonNewsRepository(cfg, log),
		SentimentRepo:    NewHuggingFaceRepository(cfg, log),
		GeminiAIRepo:     geminiAIRepo,
		PredictorRepo:    NewPredictorRepository(cfg, log),
		UnitOfWork:       NewUnitOfWork(db),
	}, nil
}
