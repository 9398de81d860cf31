package repository

import (
	"context"
	"errors"
	"fmt"

	"stockwisely/internal/model"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/utils"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User, opts ...utils.DBOption) error
	GetByEmail(ctx context.Context, email string, opts ...utils.DBOption) (*model.User, error)
	// GetByEmailForUpdate reads the user row under a FOR UPDATE lock. Every
	// read-modify-write of the embedded watchlist/predictions arrays must go
	// through this inside a transaction so concurrent mutations serialize
	// instead of dropping each other's writes.
	GetByEmailForUpdate(ctx context.Context, email string, opts ...utils.DBOption) (*model.User, error)
	Save(ctx context.Context, user *model.User, opts ...utils.DBOption) error
	UpdateProfile(ctx context.Context, email string, param model.UpdateProfileParam, opts ...utils.DBOption) error
	UpdatePassword(ctx context.Context, email string, passwordHash string, opts ...utils.DBOption) error
	// UpdatePredictionResult transitions a prediction record out of pending.
	// No route calls this today; it is the hook for an external reconciliation
	// job that compares predictions against realized prices.
	UpdatePredictionResult(ctx context.Context, email string, index int, result string, opts ...utils.DBOption) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *model.User, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if err := tx.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string, opts ...utils.DBOption) (*model.User, error) {
	return r.getByEmail(ctx, email, opts...)
}

func (r *userRepository) GetByEmailForUpdate(ctx context.Context, email string, opts ...utils.DBOption) (*model.User, error) {
	return r.getByEmail(ctx, email, append(opts, utils.WithLockForUpdate())...)
}

func (r *userRepository) getByEmail(ctx context.Context, email string, opts ...utils.DBOption) (*model.User, error) {
	var user model.User
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, result.Error
	}

	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Save(user).Error
}

func (r *userRepository) UpdateProfile(ctx context.Context, email string, param model.UpdateProfileParam, opts ...utils.DBOption) error {
	updates := map[string]interface{}{}
	if param.Username != nil {
		updates["username"] = *param.Username
	}
	if param.NewEmail != nil {
		updates["email"] = *param.NewEmail
	}
	if len(updates) == 0 {
		return nil
	}

	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Model(&model.User{}).Where("email = ?", email).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %s: %w", *param.NewEmail, apperrors.ErrConflict)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, email string, passwordHash string, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Model(&model.User{}).Where("email = ?", email).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	return nil
}

func (r *userRepository) UpdatePredictionResult(ctx context.Context, email string, index int, result string, opts ...utils.DBOption) error {
	user, err := r.GetByEmailForUpdate(ctx, email, opts...)
	if err != nil {
		return err
	}

	records := user.Predictions.Data()
	if index < 0 || index >= len(records) {
		return fmt.Errorf("prediction index %d for user %s: %w", index, email, apperrors.ErrNotFound)
	}

	records[index].Result = result
	user.Predictions = model.NewPredictionList(records)
	return r.Save(ctx, user, opts...)
}
