package dto

type SentimentRequest struct {
	Text string `json:"text" validate:"required"`
}

type SentimentScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type SentimentResponse struct {
	Sentiment []SentimentScore `json:"sentiment"`
}
