package service

import (
	"context"
	"fmt"
	"math"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/internal/model"
	"stockwisely/internal/repository"
	"stockwisely/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	GetProfile(ctx context.Context, email string) (*dto.UserProfile, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) error
	UpdatePassword(ctx context.Context, req dto.UpdatePasswordRequest) error
	// Activity derives summary statistics from the current document. Nothing
	// is persisted; the numbers are recomputed on every call.
	Activity(ctx context.Context, email string) (*dto.ActivitySummary, error)
}

type userService struct {
	cfg      *config.Config
	log      *logger.Logger
	userRepo repository.UserRepository
}

func NewUserService(cfg *config.Config, log *logger.Logger, userRepo repository.UserRepository) UserService {
	return &userService{
		cfg:      cfg,
		log:      log,
		userRepo: userRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, email string) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	watchlist := user.Watchlist.Data()
	if watchlist == nil {
		watchlist = []model.WatchlistEntry{}
	}

	return &dto.UserProfile{
		Username:    user.Username,
		Email:       user.Email,
		JoinDate:    user.CreatedAt,
		Watchlist:   watchlist,
		Preferences: user.Preferences.Data(),
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) error {
	param := model.UpdateProfileParam{}
	if req.Username != "" {
		param.Username = &req.Username
	}
	if req.NewEmail != "" {
		param.NewEmail = &req.NewEmail
	}

	return s.userRepo.UpdateProfile(ctx, req.Email, param)
}

func (s *userService) UpdatePassword(ctx context.Context, req dto.UpdatePasswordRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, req.Email, string(hash))
}

func (s *userService) Activity(ctx context.Context, email string) (*dto.ActivitySummary, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	predictions := user.Predictions.Data()

	total := len(predictions)
	successful := 0
	sum := 0.0
	for _, p := range predictions {
		if p.Result == model.PredictionResultSuccess {
			successful++
		}
		sum += p.Accuracy
	}

	// Empty history yields 0, never a division fault.
	avgAccuracy := 0.0
	if total > 0 {
		avgAccuracy = math.Round(sum/float64(total)*100) / 100
	}

	return &dto.ActivitySummary{
		TotalPredictions:      total,
		SuccessfulPredictions: successful,
		AvgAccuracy:           avgAccuracy,
		WatchlistItems:        len(user.Watchlist.Data()),
		LastActive:            user.UpdatedAt,
	}, nil
}
