package service

import (
	"context"
	"fmt"
	"sync"

	"stockwisely/internal/model"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/logger"
	"stockwisely/pkg/utils"

	"go.uber.org/zap"
)

func newTestLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

// inMemoryUserRepo backs service tests with a map keyed by email. Reads hand
// out copies so mutations only land through Save, matching how a real row
// read behaves.
type inMemoryUserRepo struct {
	mu     sync.Mutex
	users  map[string]*model.User
	nextID uint
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{
		users:  make(map[string]*model.User),
		nextID: 1,
	}
}

func cloneUser(u *model.User) *model.User {
	copied := *u
	copied.Watchlist = model.NewWatchlist(append([]model.WatchlistEntry(nil), u.Watchlist.Data()...))
	copied.Predictions = model.NewPredictionList(append([]model.PredictionRecord(nil), u.Predictions.Data()...))
	return &copied
}

func (r *inMemoryUserRepo) Create(ctx context.Context, user *model.User, opts ...utils.DBOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrConflict)
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = cloneUser(user)
	return nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string, opts ...utils.DBOption) (*model.User, error) {
	return r.get(email)
}

func (r *inMemoryUserRepo) GetByEmailForUpdate(ctx context.Context, email string, opts ...utils.DBOption) (*model.User, error) {
	return r.get(email)
}

func (r *inMemoryUserRepo) get(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	return cloneUser(user), nil
}

func (r *inMemoryUserRepo) Save(ctx context.Context, user *model.User, opts ...utils.DBOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.Email] = cloneUser(user)
	return nil
}

func (r *inMemoryUserRepo) UpdateProfile(ctx context.Context, email string, param model.UpdateProfileParam, opts ...utils.DBOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	if param.Username != nil {
		user.Username = *param.Username
	}
	if param.NewEmail != nil {
		if _, taken := r.users[*param.NewEmail]; taken && *param.NewEmail != email {
			return fmt.Errorf("email %s: %w", *param.NewEmail, apperrors.ErrConflict)
		}
		delete(r.users, email)
		user.Email = *param.NewEmail
		r.users[user.Email] = user
	}
	return nil
}

func (r *inMemoryUserRepo) UpdatePassword(ctx context.Context, email string, passwordHash string, opts ...utils.DBOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *inMemoryUserRepo) UpdatePredictionResult(ctx context.Context, email string, index int, result string, opts ...utils.DBOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	records := user.Predictions.Data()
	if index < 0 || index >= len(records) {
		return fmt.Errorf("prediction index %d for user %s: %w", index, email, apperrors.ErrNotFound)
	}
	records[index].Result = result
	user.Predictions = model.NewPredictionList(records)
	return nil
}

// fakeUnitOfWork serializes callbacks with a mutex, standing in for the row
// locks the real transaction takes.
type fakeUnitOfWork struct {
	mu sync.Mutex
}

func (u *fakeUnitOfWork) Run(fn func(opts ...utils.DBOption) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn()
}

func seedUser(repo *inMemoryUserRepo, email string) *model.User {
	user := &model.User{
		Email:        email,
		Username:     "tester",
		PasswordHash: "irrelevant",
		Watchlist:    model.NewWatchlist([]model.WatchlistEntry{}),
		Predictions:  model.NewPredictionList([]model.PredictionRecord{}),
		Preferences:  model.NewPreferences(model.DefaultPreferences()),
	}
	_ = repo.Create(context.Background(), user)
	return user
}
