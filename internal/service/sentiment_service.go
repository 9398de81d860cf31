package service

import (
	"context"

	"stockwisely/internal/dto"
	"stockwisely/internal/repository"
	"stockwisely/pkg/logger"
)

type SentimentService interface {
	Analyze(ctx context.Context, text string) (*dto.SentimentResponse, error)
}

type sentimentService struct {
	log           *logger.Logger
	sentimentRepo repository.SentimentRepository
}

func NewSentimentService(log *logger.Logger, sentimentRepo repository.SentimentRepository) SentimentService {
	return &sentimentService{
		log:           log,
		sentimentRepo: sentimentRepo,
	}
}

func (s *sentimentService) Analyze(ctx context.Context, text string) (*dto.SentimentResponse, error) {
	scores, err := s.sentimentRepo.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	return &dto.SentimentResponse{Sentiment: scores}, nil
}
