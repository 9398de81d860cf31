package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/internal/model"
	"stockwisely/internal/repository"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg      *config.Config
	log      *logger.Logger
	userRepo repository.UserRepository
}

func NewAuthService(cfg *config.Config, log *logger.Logger, userRepo repository.UserRepository) AuthService {
	return &authService{
		cfg:      cfg,
		log:      log,
		userRepo: userRepo,
	}
}

// Register creates the user record with an empty watchlist, an empty
// prediction history and default preferences. Duplicate emails are rejected
// with Conflict; the unique index backstops the race between the existence
// check and the insert.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) error {
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return fmt.Errorf("email %s: %w", req.Email, apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Watchlist:    model.NewWatchlist([]model.WatchlistEntry{}),
		Predictions:  model.NewPredictionList([]model.PredictionRecord{}),
		Preferences:  model.NewPreferences(model.DefaultPreferences()),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "User created", logger.StringField("email", req.Email))
	return nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.Auth.TokenExpiry).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{Token: token}, nil
}
