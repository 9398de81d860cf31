package utils

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DBOption func(*gorm.DB) *gorm.DB

func ApplyOptions(db *gorm.DB, opts ...DBOption) *gorm.DB {
	for _, opt := range opts {
		db = opt(db)
	}
	return db
}

func WithTx(tx *gorm.DB) DBOption {
	return func(_ *gorm.DB) *gorm.DB {
		return tx
	}
}

func WithWhere(query interface{}, args ...interface{}) DBOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

// WithLockForUpdate acquires a row lock on the selected rows. Read-modify-write
// sequences on a user document must hold this lock for the whole transaction so
// concurrent mutations cannot drop each other's writes.
func WithLockForUpdate() DBOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
}
