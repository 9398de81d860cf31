package dto

type PredictRequest struct {
	Ticker         string `json:"ticker" validate:"required"`
	PredictionDate string `json:"predictionDate" validate:"required"`
	UserEmail      string `json:"userEmail" validate:"omitempty,email"`
}

// PredictionResult is the JSON emitted as the final stdout line of the
// predictor subprocess. Any other output is discarded.
type PredictionResult struct {
	PredictedPrice float64 `json:"predicted_price"`
	Accuracy       float64 `json:"accuracy"`
	GraphPath      string  `json:"graph_path"`
}

// PredictionInput carries a completed prediction result into the user's
// history.
type PredictionInput struct {
	Ticker         string
	PredictionDate string
	PredictedPrice float64
	Accuracy       float64
	GraphPath      string
}
