package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"stockwisely/internal/dto"
	"stockwisely/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAIRepo struct {
	reply string
	err   error
	calls int
	last  string
}

func (f *fakeAIRepo) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.last = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestChatbotService_Chat(t *testing.T) {
	ai := &fakeAIRepo{reply: "You can add stocks from the dashboard."}
	svc := NewChatbotService(newTestLogger(), ai)

	resp, err := svc.Chat(context.Background(), dto.ChatbotRequest{
		Message:         "How do I add a stock to my watchlist?",
		IsAuthenticated: true,
		CurrentPage:     "/dashboard",
	})
	require.NoError(t, err)
	assert.Equal(t, "You can add stocks from the dashboard.", resp.Response)
	assert.False(t, resp.Timestamp.IsZero())
	assert.True(t, strings.Contains(ai.last, "Logged In"))
	assert.True(t, strings.Contains(ai.last, "/dashboard"))
}

func TestChatbotService_Chat_UnauthenticatedLandingPage(t *testing.T) {
	ai := &fakeAIRepo{reply: "should not be used"}
	svc := NewChatbotService(newTestLogger(), ai)

	// Non-onboarding questions from signed-out visitors on landing pages are
	// answered with the sign-in reminder, without calling the provider.
	resp, err := svc.Chat(context.Background(), dto.ChatbotRequest{
		Message:     "Predict AAPL for me",
		CurrentPage: "/login",
	})
	require.NoError(t, err)
	assert.Equal(t, signInReminder, resp.Response)
	assert.Equal(t, 0, ai.calls)
}

func TestChatbotService_Chat_UnauthenticatedOnboarding(t *testing.T) {
	ai := &fakeAIRepo{reply: "StockWisely is a stock prediction platform."}
	svc := NewChatbotService(newTestLogger(), ai)

	resp, err := svc.Chat(context.Background(), dto.ChatbotRequest{
		Message:     "What is this app about?",
		CurrentPage: "/landing",
	})
	require.NoError(t, err)
	assert.Equal(t, "StockWisely is a stock prediction platform.", resp.Response)
	assert.Equal(t, 1, ai.calls)
}

func TestChatbotService_Chat_ProviderError(t *testing.T) {
	ai := &fakeAIRepo{err: fmt.Errorf("generate content: %w", apperrors.ErrUpstream)}
	svc := NewChatbotService(newTestLogger(), ai)

	_, err := svc.Chat(context.Background(), dto.ChatbotRequest{
		Message:         "hello",
		IsAuthenticated: true,
		CurrentPage:     "/dashboard",
	})
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
