package dto

import (
	"time"

	"stockwisely/internal/model"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UpdateProfileRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username"`
	NewEmail string `json:"newEmail" validate:"omitempty,email"`
}

type UpdatePasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserProfile is the read projection of a user record. It never carries the
// password hash.
type UserProfile struct {
	Username    string                 `json:"username"`
	Email       string                 `json:"email"`
	JoinDate    time.Time              `json:"joinDate"`
	Watchlist   []model.WatchlistEntry `json:"watchlist"`
	Preferences model.Preferences      `json:"preferences"`
}

// ActivitySummary is derived from the current document on every call and never
// persisted.
type ActivitySummary struct {
	TotalPredictions      int       `json:"totalPredictions"`
	SuccessfulPredictions int       `json:"successfulPredictions"`
	AvgAccuracy           float64   `json:"avgAccuracy"`
	WatchlistItems        int       `json:"watchlistItems"`
	LastActive            time.Time `json:"lastActive"`
}
