package repository

import (
	"testing"

	"stockwisely/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePredictorOutput(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		wantErr bool
	}{
		{
			name: "clean single line",
			out:  `{"predicted_price": 187.5, "accuracy": 92.3, "graph_path": "/graphs/AAPL.png"}`,
		},
		{
			name: "progress lines before result",
			out: "loading model...\ntraining epoch 1/5\ntraining epoch 5/5\n" +
				`{"predicted_price": 187.5, "accuracy": 92.3, "graph_path": "/graphs/AAPL.png"}` + "\n",
		},
		{
			name:    "empty output",
			out:     "   \n  ",
			wantErr: true,
		},
		{
			name:    "last line not JSON",
			out:     "{\"predicted_price\": 187.5}\ndone",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parsePredictorOutput([]byte(tt.out))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUpstream)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 187.5, result.PredictedPrice)
			assert.Equal(t, 92.3, result.Accuracy)
			assert.Equal(t, "/graphs/AAPL.png", result.GraphPath)
		})
	}
}
