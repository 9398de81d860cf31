package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/pkg/apperrors"
	"stockwisely/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeYahooRepo struct {
	snapshot *dto.StockSnapshot
	err      error
	calls    int
}

func (f *fakeYahooRepo) GetSnapshot(ctx context.Context, ticker string) (*dto.StockSnapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func newStockFixture(yahoo *fakeYahooRepo) StockService {
	cfg := &config.Config{
		Cache: config.Cache{StockSnapshotTTL: time.Minute},
	}
	return NewStockService(cfg, newTestLogger(), cache.NewCache(time.Minute, time.Minute), yahoo)
}

func TestStockService_GetStock_CachesSnapshot(t *testing.T) {
	yahoo := &fakeYahooRepo{
		snapshot: &dto.StockSnapshot{
			CompanyName:  "Apple Inc.",
			CurrentPrice: 187.5,
			Prices:       []float64{180, 187.5},
			Dates:        []string{"2024-01-01", "2024-01-02"},
		},
	}
	svc := newStockFixture(yahoo)

	first, err := svc.GetStock(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", first.CompanyName)

	second, err := svc.GetStock(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, yahoo.calls)
}

func TestStockService_GetStock_UpstreamError(t *testing.T) {
	yahoo := &fakeYahooRepo{
		err: fmt.Errorf("chart request failed: %w", apperrors.ErrUpstream),
	}
	svc := newStockFixture(yahoo)

	_, err := svc.GetStock(context.Background(), "AAPL")
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Equal(t, 1, yahoo.calls)
}
