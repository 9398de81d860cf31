package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/logger"
)

// PredictorRepository wraps the external prediction script. The script is an
// opaque collaborator: it is handed a ticker and a date, and only the final
// line of its stdout is parsed (as JSON); everything else it prints is
// discarded.
type PredictorRepository interface {
	Predict(ctx context.Context, ticker, date string) (*dto.PredictionResult, error)
}

type predictorRepository struct {
	cfg    *config.Config
	logger *logger.Logger
}

func NewPredictorRepository(cfg *config.Config, log *logger.Logger) PredictorRepository {
	return &predictorRepository{
		cfg:    cfg,
		logger: log,
	}
}

func (r *predictorRepository) Predict(ctx context.Context, ticker, date string) (*dto.PredictionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Predictor.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.cfg.Predictor.Command, r.cfg.Predictor.ScriptPath, ticker, date)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			r.logger.ErrorContext(ctx, "Predictor script timed out",
				logger.StringField("ticker", ticker),
				logger.StringField("date", date))
			return nil, fmt.Errorf("predictor timed out after %s: %w", r.cfg.Predictor.Timeout, apperrors.ErrUpstream)
		}
		r.logger.ErrorContext(ctx, "Predictor script failed",
			logger.StringField("ticker", ticker),
			logger.StringField("stderr", stderr.String()),
			logger.ErrorField(err))
		return nil, fmt.Errorf("predictor script failed: %s: %w", strings.TrimSpace(stderr.String()), apperrors.ErrUpstream)
	}

	return parsePredictorOutput(stdout.Bytes())
}

// parsePredictorOutput extracts the result from the script's final stdout
// line. The script may log progress to earlier lines; only the last line is
// contractually JSON.
func parsePredictorOutput(out []byte) (*dto.PredictionResult, error) {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil, fmt.Errorf("predictor produced no output: %w", apperrors.ErrUpstream)
	}

	lines := strings.Split(trimmed, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])

	var result dto.PredictionResult
	if err := json.Unmarshal([]byte(last), &result); err != nil {
		return nil, fmt.Errorf("unexpected predictor output %q: %w", last, apperrors.ErrUpstream)
	}

	return &result, nil
}
