package service

import (
	"context"
	"fmt"

	"stockwisely/internal/dto"
	"stockwisely/internal/model"
	"stockwisely/internal/repository"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/logger"
	"stockwisely/pkg/utils"
)

type WatchlistService interface {
	Add(ctx context.Context, req dto.AddWatchlistRequest) error
	Remove(ctx context.Context, req dto.RemoveWatchlistRequest) error
	List(ctx context.Context, email string) ([]model.WatchlistEntry, error)
}

type watchlistService struct {
	log      *logger.Logger
	userRepo repository.UserRepository
	uow      repository.UnitOfWork
}

func NewWatchlistService(log *logger.Logger, userRepo repository.UserRepository, uow repository.UnitOfWork) WatchlistService {
	return &watchlistService{
		log:      log,
		userRepo: userRepo,
		uow:      uow,
	}
}

// Add appends a ticker with its price/date snapshot. The whole
// read-check-append-save sequence runs under a row lock, so two concurrent
// adds of the same ticker serialize and the loser sees the duplicate.
func (s *watchlistService) Add(ctx context.Context, req dto.AddWatchlistRequest) error {
	if len(req.Prices) != len(req.Dates) {
		return fmt.Errorf("prices and dates must have the same length: %w", apperrors.ErrValidation)
	}

	companyName := req.CompanyName
	if companyName == "" {
		companyName = "Unknown"
	}
	prices := req.Prices
	if prices == nil {
		prices = []float64{}
	}
	dates := req.Dates
	if dates == nil {
		dates = []string{}
	}

	return s.uow.Run(func(opts ...utils.DBOption) error {
		user, err := s.userRepo.GetByEmailForUpdate(ctx, req.Email, opts...)
		if err != nil {
			return err
		}

		entries := user.Watchlist.Data()
		for _, entry := range entries {
			if entry.Ticker == req.Ticker {
				return fmt.Errorf("ticker %s already in watchlist: %w", req.Ticker, apperrors.ErrConflict)
			}
		}

		entries = append(entries, model.WatchlistEntry{
			Ticker:      req.Ticker,
			CompanyName: companyName,
			Prices:      prices,
			Dates:       dates,
		})
		user.Watchlist = model.NewWatchlist(entries)

		return s.userRepo.Save(ctx, user, opts...)
	})
}

// Remove filters the ticker out of the watchlist. Removing an absent ticker
// is a no-op that still succeeds.
func (s *watchlistService) Remove(ctx context.Context, req dto.RemoveWatchlistRequest) error {
	return s.uow.Run(func(opts ...utils.DBOption) error {
		user, err := s.userRepo.GetByEmailForUpdate(ctx, req.Email, opts...)
		if err != nil {
			return err
		}

		entries := user.Watchlist.Data()
		filtered := make([]model.WatchlistEntry, 0, len(entries))
		for _, entry := range entries {
			if entry.Ticker != req.Ticker {
				filtered = append(filtered, entry)
			}
		}

		if len(filtered) == len(entries) {
			return nil
		}

		user.Watchlist = model.NewWatchlist(filtered)
		return s.userRepo.Save(ctx, user, opts...)
	})
}

func (s *watchlistService) List(ctx context.Context, email string) ([]model.WatchlistEntry, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	entries := user.Watchlist.Data()
	if entries == nil {
		entries = []model.WatchlistEntry{}
	}
	return entries, nil
}
