// Copyright (c) 2026 Stocktells. All rights reserved.

package market

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
)

// MockFetcher is a mock implementation of Fetcher.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchDaily(ctx context.Context, ticker string, from, to time.Time) ([]Bar, error) {
	args := m.Called(ctx, ticker, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Bar), args.Error(1)
}

// MockHistoryCache is a mock implementation of HistoryCache.
type MockHistoryCache struct {
	mock.Mock
}

func (m *MockHistoryCache) Get(ctx context.Context, key string) ([]Bar, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]Bar), args.Bool(1), args.Error(2)
}

func (m *MockHistoryCache) Set(ctx context.Context, key string, bars []Bar, ttl time.Duration) error {
	args := m.Called(ctx, key, bars, ttl)
	return args.Error(0)
}

func sampleBars() []Bar {
	return []Bar{
		{Date: NewDay(time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC)), Close: 668.445, AdjClose: 67.705},
		{Date: NewDay(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)), Close: 680.120, AdjClose: 0},
	}
}

func TestService_History(t *testing.T) {
	from := time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	t.Run("cache miss fetches, normalizes and fills the cache", func(t *testing.T) {
		fetcher := &MockFetcher{}
		cache := &MockHistoryCache{}

		cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, false, nil)
		fetcher.On("FetchDaily", mock.Anything, "NVD.F", from, to).Return(sampleBars(), nil)
		cache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]market.Bar"), HistoryCacheTTL).Return(nil)

		service := NewService(fetcher, cache, testLogger())
		bars, err := service.History(context.Background(), "NVD.F", from, to)

		require.NoError(t, err)
		require.Len(t, bars, 2)
		// Missing adjusted close falls back to the raw close.
		assert.InDelta(t, 680.120, bars[1].AdjClose, 1e-9)
		cache.AssertExpectations(t)
		fetcher.AssertExpectations(t)
	})

	t.Run("cache hit skips the provider", func(t *testing.T) {
		fetcher := &MockFetcher{}
		cache := &MockHistoryCache{}

		cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(sampleBars(), true, nil)

		service := NewService(fetcher, cache, testLogger())
		bars, err := service.History(context.Background(), "NVD.F", from, to)

		require.NoError(t, err)
		assert.Len(t, bars, 2)
		fetcher.AssertNotCalled(t, "FetchDaily", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty series maps to not found", func(t *testing.T) {
		fetcher := &MockFetcher{}
		cache := &MockHistoryCache{}

		cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(nil, false, nil)
		fetcher.On("FetchDaily", mock.Anything, "NOPE", from, to).Return([]Bar{}, nil)

		service := NewService(fetcher, cache, testLogger())
		_, err := service.History(context.Background(), "NOPE", from, to)

		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("inverted range is rejected before any I/O", func(t *testing.T) {
		fetcher := &MockFetcher{}
		cache := &MockHistoryCache{}

		service := NewService(fetcher, cache, testLogger())
		_, err := service.History(context.Background(), "NVD.F", to, from)

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "UNPROCESSABLE", appError.Code)
		fetcher.AssertNotCalled(t, "FetchDaily", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("cache failure degrades to a provider fetch", func(t *testing.T) {
		fetcher := &MockFetcher{}
		cache := &MockHistoryCache{}

		cache.On("Get", mock.Anything, mock.AnythingOfType("string")).
			Return(nil, false, assert.AnError)
		fetcher.On("FetchDaily", mock.Anything, "NVD.F", from, to).Return(sampleBars(), nil)
		cache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("[]market.Bar"), HistoryCacheTTL).Return(nil)

		service := NewService(fetcher, cache, testLogger())
		bars, err := service.History(context.Background(), "NVD.F", from, to)

		require.NoError(t, err)
		assert.Len(t, bars, 2)
	})
}
