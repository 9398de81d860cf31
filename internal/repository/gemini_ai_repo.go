package repository

import (
	"context"
	"fmt"
	"time"

	"stockwisely/config"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/logger"
	"stockwisely/pkg/ratelimit"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

type AIRepository interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// geminiAIRepository answers stateless prompts through the Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	tokenLimiter := ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute)
	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiAIRepository) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Gemini.Timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	geminiTokenResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.Gemini.BaseModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to count tokens: %w", err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(geminiTokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)
	if err := r.tokenLimiter.Wait(ctx, int(geminiTokenResp.TotalTokens)); err != nil {
		return "", fmt.Errorf("failed to wait for gemini token limit: %w", err)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for gemini request limit: %w", err)
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.BaseModel, contents, nil)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to generate content from gemini", logger.ErrorField(err))
		return "", fmt.Errorf("gemini request failed: %w", apperrors.ErrUpstream)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from gemini: %w", apperrors.ErrUpstream)
	}

	return text, nil
}
