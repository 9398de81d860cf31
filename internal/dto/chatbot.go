package dto

import "time"

type ChatbotRequest struct {
	Message         string `json:"message" validate:"required"`
	Context         string `json:"context"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	CurrentPage     string `json:"currentPage"`
}

type ChatbotResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
