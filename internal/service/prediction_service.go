package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"stockwisely/internal/dto"
	"stockwisely/internal/model"
	"stockwisely/internal/repository"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/logger"
	"stockwisely/pkg/utils"
)

type PredictionService interface {
	// Predict runs the external predictor and, when an email is supplied,
	// appends the result to that user's history. The append is best-effort:
	// its failure never fails the prediction response.
	Predict(ctx context.Context, req dto.PredictRequest) (*dto.PredictionResult, error)
	Append(ctx context.Context, email string, input dto.PredictionInput) error
	List(ctx context.Context, email string) ([]model.PredictionRecord, error)
}

type predictionService struct {
	log           *logger.Logger
	userRepo      repository.UserRepository
	predictorRepo repository.PredictorRepository
	uow           repository.UnitOfWork
	now           func() time.Time
}

func NewPredictionService(log *logger.Logger, userRepo repository.UserRepository, predictorRepo repository.PredictorRepository, uow repository.UnitOfWork) PredictionService {
	return &predictionService{
		log:           log,
		userRepo:      userRepo,
		predictorRepo: predictorRepo,
		uow:           uow,
		now:           time.Now,
	}
}

func (s *predictionService) Predict(ctx context.Context, req dto.PredictRequest) (*dto.PredictionResult, error) {
	result, err := s.predictorRepo.Predict(ctx, req.Ticker, req.PredictionDate)
	if err != nil {
		return nil, err
	}

	if req.UserEmail != "" {
		if err := s.Append(ctx, req.UserEmail, dto.PredictionInput{
			Ticker:         req.Ticker,
			PredictionDate: req.PredictionDate,
			PredictedPrice: result.PredictedPrice,
			Accuracy:       result.Accuracy,
			GraphPath:      result.GraphPath,
		}); err != nil {
			s.log.WarnContext(ctx, "Failed to save prediction to user history",
				logger.StringField("email", req.UserEmail),
				logger.ErrorField(err))
		}
	}

	return result, nil
}

// Append records a completed prediction as pending. A missing user record is
// logged and swallowed: this is a side-channel write, not a user-facing
// transactional operation.
func (s *predictionService) Append(ctx context.Context, email string, input dto.PredictionInput) error {
	err := s.uow.Run(func(opts ...utils.DBOption) error {
		user, err := s.userRepo.GetByEmailForUpdate(ctx, email, opts...)
		if err != nil {
			return err
		}

		records := user.Predictions.Data()
		records = append(records, model.PredictionRecord{
			Ticker:         input.Ticker,
			PredictionDate: input.PredictionDate,
			PredictedPrice: input.PredictedPrice,
			Accuracy:       input.Accuracy,
			GraphPath:      input.GraphPath,
			CreatedAt:      s.now(),
			Result:         model.PredictionResultPending,
		})
		user.Predictions = model.NewPredictionList(records)

		return s.userRepo.Save(ctx, user, opts...)
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.log.WarnContext(ctx, "Prediction not recorded, user not found",
			logger.StringField("email", email))
		return nil
	}
	return err
}

func (s *predictionService) List(ctx context.Context, email string) ([]model.PredictionRecord, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	records := user.Predictions.Data()
	if records == nil {
		records = []model.PredictionRecord{}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}
