package dto

type AddWatchlistRequest struct {
	Email       string    `json:"email" validate:"required,email"`
	Ticker      string    `json:"ticker" validate:"required"`
	CompanyName string    `json:"companyName"`
	Prices      []float64 `json:"prices"`
	Dates       []string  `json:"dates"`
}

type RemoveWatchlistRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Ticker string `json:"ticker" validate:"required"`
}
