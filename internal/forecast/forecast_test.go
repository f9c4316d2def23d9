// Copyright (c) 2026 Stocktells. All rights reserved.

package forecast

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akankshakuwar/stocktells/internal/market"
	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
	"github.com/akankshakuwar/stocktells/pkg/ordinal"
)

func TestFit(t *testing.T) {
	t.Run("recovers an exact line", func(t *testing.T) {
		// y = 2x + 3, no noise
		xs := []float64{1, 2, 3, 4, 5}
		ys := []float64{5, 7, 9, 11, 13}

		model, err := Fit(xs, ys)

		require.NoError(t, err)
		assert.InDelta(t, 2.0, model.Slope, 1e-9)
		assert.InDelta(t, 3.0, model.Intercept, 1e-9)
		assert.InDelta(t, 1.0, model.RSquared, 1e-9)
		assert.InDelta(t, 0.0, model.MSE, 1e-9)
		assert.Equal(t, 5, model.SampleCount)
	})

	t.Run("flat series fits with full r squared", func(t *testing.T) {
		xs := []float64{1, 2, 3}
		ys := []float64{42, 42, 42}

		model, err := Fit(xs, ys)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, model.Slope, 1e-9)
		assert.InDelta(t, 42.0, model.Intercept, 1e-9)
		assert.InDelta(t, 1.0, model.RSquared, 1e-9)
	})

	t.Run("noisy data yields r squared below one", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4}
		ys := []float64{2, 5, 4, 9}

		model, err := Fit(xs, ys)

		require.NoError(t, err)
		assert.Less(t, model.RSquared, 1.0)
		assert.Greater(t, model.MSE, 0.0)
	})

	t.Run("fewer than two samples is rejected", func(t *testing.T) {
		_, err := Fit([]float64{1}, []float64{2})
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("zero x variance is rejected", func(t *testing.T) {
		_, err := Fit([]float64{3, 3, 3}, []float64{1, 2, 3})
		assert.ErrorIs(t, err, ErrDegenerateInput)
	})
}

func TestModel_Predict(t *testing.T) {
	model := &Model{Slope: 2, Intercept: 3}
	assert.InDelta(t, 23.0, model.Predict(10), 1e-9)
}

// MockHistoryProvider is a mock implementation of HistoryProvider.
type MockHistoryProvider struct {
	mock.Mock
}

func (m *MockHistoryProvider) History(ctx context.Context, ticker string, from, to time.Time) ([]market.Bar, error) {
	args := m.Called(ctx, ticker, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]market.Bar), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Forecast(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	// Four consecutive days on the exact line price = ordinal - base + 100.
	lineBars := func() []market.Bar {
		bars := make([]market.Bar, 4)
		for i := 0; i < 4; i++ {
			day := from.AddDate(0, 0, i)
			bars[i] = market.Bar{
				Date:     market.NewDay(day),
				AdjClose: 100 + float64(i),
			}
		}
		return bars
	}

	t.Run("extrapolates one day past the series", func(t *testing.T) {
		provider := &MockHistoryProvider{}
		provider.On("History", mock.Anything, "AAPL", from, to).Return(lineBars(), nil)

		service := NewService(provider, testLogger())
		report, err := service.Forecast(context.Background(), "AAPL", from, to)

		require.NoError(t, err)
		assert.Equal(t, "AAPL", report.Ticker)
		assert.InDelta(t, 1.0, report.Model.Slope, 1e-6)
		assert.InDelta(t, 1.0, report.Model.RSquared, 1e-9)
		require.Len(t, report.Fitted, 4)

		lastOrdinal := ordinal.FromTime(to)
		assert.Equal(t, lastOrdinal+1, report.NextDay.Ordinal)
		// One more day on a unit-slope line.
		assert.InDelta(t, 104.0, report.NextDay.Price, 1e-6)
		assert.Equal(t, "2024-03-05", report.NextDay.Date.Format("2006-01-02"))
	})

	t.Run("single bar is unprocessable", func(t *testing.T) {
		provider := &MockHistoryProvider{}
		provider.On("History", mock.Anything, "AAPL", from, to).
			Return([]market.Bar{{Date: market.NewDay(from), AdjClose: 100}}, nil)

		service := NewService(provider, testLogger())
		_, err := service.Forecast(context.Background(), "AAPL", from, to)

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "UNPROCESSABLE", appError.Code)
	})

	t.Run("history errors pass through untouched", func(t *testing.T) {
		provider := &MockHistoryProvider{}
		provider.On("History", mock.Anything, "NOPE", from, to).
			Return(nil, apperr.NotFound("Price data"))

		service := NewService(provider, testLogger())
		_, err := service.Forecast(context.Background(), "NOPE", from, to)

		assert.True(t, apperr.IsNotFound(err))
	})
}
