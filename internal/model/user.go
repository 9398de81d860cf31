package model

import (
	"time"

	"gorm.io/datatypes"
)

// Prediction result states. Records are created as pending; the success/failed
// transition is reserved for a future reconciliation job (see
// repository.UpdatePredictionResult).
const (
	PredictionResultPending = "pending"
	PredictionResultSuccess = "success"
	PredictionResultFailed  = "failed"
)

// WatchlistEntry is a saved ticker plus the price/date snapshot taken when the
// entry was added. The snapshot is not live-updated; refreshing is the
// caller's responsibility via a new market-data fetch.
type WatchlistEntry struct {
	Ticker      string    `json:"ticker"`
	CompanyName string    `json:"companyName"`
	Prices      []float64 `json:"prices"`
	Dates       []string  `json:"dates"`
}

// PredictionRecord is an immutable log entry for one completed prediction
// request. Accuracy is stored exactly as produced by the predictor; its scale
// is defined by the consumer.
type PredictionRecord struct {
	Ticker         string    `json:"ticker"`
	PredictionDate string    `json:"predictionDate"`
	PredictedPrice float64   `json:"predictedPrice"`
	Accuracy       float64   `json:"accuracy"`
	GraphPath      string    `json:"graphPath"`
	CreatedAt      time.Time `json:"createdAt"`
	Result         string    `json:"result"`
}

type Preferences struct {
	DarkMode      bool `json:"darkMode"`
	Notifications bool `json:"notifications"`
}

// DefaultPreferences are applied once at account creation.
func DefaultPreferences() Preferences {
	return Preferences{DarkMode: false, Notifications: true}
}

// User owns all persisted state for one account. Email is the sole lookup key;
// watchlist and predictions are embedded jsonb documents written back as a
// whole on save.
type User struct {
	ID           uint                                   `gorm:"primaryKey" json:"-"`
	Email        string                                 `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username     string                                 `gorm:"size:255;not null" json:"username"`
	PasswordHash string                                 `gorm:"column:password_hash;size:255;not null" json:"-"`
	Watchlist    datatypes.JSONType[[]WatchlistEntry]   `gorm:"type:jsonb" json:"watchlist"`
	Predictions  datatypes.JSONType[[]PredictionRecord] `gorm:"type:jsonb" json:"predictions"`
	Preferences  datatypes.JSONType[Preferences]        `gorm:"type:jsonb" json:"preferences"`
	CreatedAt    time.Time                              `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time                              `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// NewWatchlist wraps entries for the jsonb watchlist column.
func NewWatchlist(entries []WatchlistEntry) datatypes.JSONType[[]WatchlistEntry] {
	return datatypes.NewJSONType(entries)
}

// NewPredictionList wraps records for the jsonb predictions column.
func NewPredictionList(records []PredictionRecord) datatypes.JSONType[[]PredictionRecord] {
	return datatypes.NewJSONType(records)
}

// NewPreferences wraps preferences for the jsonb preferences column.
func NewPreferences(p Preferences) datatypes.JSONType[Preferences] {
	return datatypes.NewJSONType(p)
}

type UpdateProfileParam struct {
	Username *string
	NewEmail *string
}
