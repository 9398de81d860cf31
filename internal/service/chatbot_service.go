package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockwisely/internal/dto"
	"stockwisely/internal/repository"
	"stockwisely/pkg/logger"
)

// FallbackMessage is returned to the client when the chat provider is
// unreachable, so the assistant widget never renders an empty bubble.
const FallbackMessage = "I'm having trouble connecting right now. For help with StockWisely, you can: " +
	"1) Use the Home page to make stock predictions, 2) Add stocks to your Watchlist, " +
	"3) Check the News section for market updates, or 4) Visit your Profile to manage settings."

const signInReminder = "Please sign in first to use this feature. I can help you learn about StockWisely " +
	"if you'd like - just ask 'What is this app about?'"

const systemPromptTemplate = `You are StockWisely AI Assistant, a helpful chatbot for a stock prediction application called "StockWisely".

User Authentication Status: %s
Current Page: %s

About StockWisely:
- AI-powered stock price prediction platform
- Features: stock price predictions, watchlist management, news sentiment analysis, real-time stock tracking
- Uses market-data and news provider APIs for stock data and headlines
- Free to use with user registration required
- Supports major stock tickers (AAPL, GOOGL, TSLA, etc.)

Key Features:
1. Stock Price Prediction: enter a ticker symbol and future date to get a prediction
2. Watchlist: track favorite stocks with price snapshots and charts
3. News & Sentiment: latest stock news with sentiment analysis
4. User Profile: account settings and prediction history

Answer user questions about StockWisely's functionality, features, and usage. Be helpful, concise, and accurate.`

var onboardingKeywords = []string{"what", "about", "app", "this", "stockwisely", "features", "what is", "tell me about"}

var landingPages = map[string]bool{
	"/":        true,
	"/landing": true,
	"/login":   true,
	"/signup":  true,
}

type ChatbotService interface {
	Chat(ctx context.Context, req dto.ChatbotRequest) (*dto.ChatbotResponse, error)
}

type chatbotService struct {
	log    *logger.Logger
	aiRepo repository.AIRepository
}

func NewChatbotService(log *logger.Logger, aiRepo repository.AIRepository) ChatbotService {
	return &chatbotService{
		log:    log,
		aiRepo: aiRepo,
	}
}

func (s *chatbotService) Chat(ctx context.Context, req dto.ChatbotRequest) (*dto.ChatbotResponse, error) {
	// Unauthenticated visitors on the landing pages only get onboarding
	// answers; anything else is redirected to sign in.
	if !req.IsAuthenticated && landingPages[req.CurrentPage] && !isOnboardingQuery(req.Message) {
		return &dto.ChatbotResponse{
			Response:  signInReminder,
			Timestamp: time.Now(),
		}, nil
	}

	authStatus := "Not Logged In"
	if req.IsAuthenticated {
		authStatus = "Logged In"
	}
	currentPage := req.CurrentPage
	if currentPage == "" {
		currentPage = "Unknown"
	}

	prompt := fmt.Sprintf(systemPromptTemplate, authStatus, currentPage)
	prompt += fmt.Sprintf("\n\nUser Question: %s", req.Message)

	text, err := s.aiRepo.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &dto.ChatbotResponse{
		Response:  text,
		Timestamp: time.Now(),
	}, nil
}

func isOnboardingQuery(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range onboardingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
