// Copyright (c) 2026 Stocktells. All rights reserved.

package forecast

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/akankshakuwar/stocktells/internal/market"
	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
	"github.com/akankshakuwar/stocktells/pkg/ordinal"
)

// # Contracts & Types

// HistoryProvider defines the price-series dependency of the forecast service.
type HistoryProvider interface {
	/*
		History returns the normalized EOD series for a ticker and range.

		Returns:
		  - []market.Bar: Chronological bars with populated AdjClose
		  - error: NotFound, Unprocessable, or provider failures
	*/
	History(context context.Context, ticker string, from, to time.Time) ([]market.Bar, error)
}

// Point is one fitted sample: the observed adjusted close and the value the
// trend line assigns to the same day.
type Point struct {
	Date      market.Day `json:"date"`
	Ordinal   int        `json:"ordinal"`
	Actual    float64    `json:"actual"`
	Predicted float64    `json:"predicted"`
}

// Prediction is the single extrapolated sample one day past the series.
type Prediction struct {
	Date    market.Day `json:"date"`
	Ordinal int        `json:"ordinal"`
	Price   float64    `json:"price"`
}

// Report is the full trend analysis returned to the dashboard.
type Report struct {
	Ticker  string     `json:"ticker"`
	Model   Model      `json:"model"`
	Fitted  []Point    `json:"fitted"`
	NextDay Prediction `json:"next_day"`
}

// Service orchestrates trend fitting over fetched price history.
type Service struct {
	history HistoryProvider
	logger  *slog.Logger
}

// NewService constructs a forecast [Service].
func NewService(history HistoryProvider, logger *slog.Logger) *Service {
	return &Service{
		history: history,
		logger:  logger,
	}
}

/*
Forecast fits a linear trend to a ticker's price history and extrapolates
one calendar day beyond the last observed bar.

Description: Pulls the normalized series (through the market cache), regresses
adjusted close on ordinal date, and reports the fitted line, its quality
metrics, and the next-day prediction (maximum ordinal plus one).

Parameters:
  - context: context.Context
  - ticker: string (validated and uppercased by the transport layer)
  - from, to: time.Time

Returns:
  - *Report: Fitted trend and next-day prediction
  - error: NotFound (no data), Unprocessable (too few samples), or provider failures
*/
func (service *Service) Forecast(context context.Context, ticker string, from, to time.Time) (*Report, error) {

	bars, err := service.history.History(context, ticker, from, to)
	if err != nil {
		return nil, err
	}

	// ── 1. Feature Extraction ─────────────────────────────────────────────
	xs := make([]float64, len(bars))
	ys := make([]float64, len(bars))
	for index, bar := range bars {
		xs[index] = float64(ordinal.FromTime(bar.Date.Time))
		ys[index] = bar.AdjClose
	}

	// ── 2. Least-Squares Fit ──────────────────────────────────────────────
	model, err := Fit(xs, ys)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) || errors.Is(err, ErrDegenerateInput) {
			return nil, apperr.Unprocessable("Not enough price data to fit a trend")
		}
		return nil, err
	}

	// ── 3. Fitted Series ──────────────────────────────────────────────────
	fitted := make([]Point, len(bars))
	maxOrdinal := 0
	for index, bar := range bars {
		day := ordinal.FromTime(bar.Date.Time)
		if day > maxOrdinal {
			maxOrdinal = day
		}
		fitted[index] = Point{
			Date:      bar.Date,
			Ordinal:   day,
			Actual:    bar.AdjClose,
			Predicted: model.Predict(float64(day)),
		}
	}

	// ── 4. Next-Day Extrapolation ─────────────────────────────────────────
	nextOrdinal := maxOrdinal + 1
	report := &Report{
		Ticker: ticker,
		Model:  *model,
		Fitted: fitted,
		NextDay: Prediction{
			Date:    market.NewDay(ordinal.ToTime(nextOrdinal)),
			Ordinal: nextOrdinal,
			Price:   model.Predict(float64(nextOrdinal)),
		},
	}

	service.logger.Debug("forecast_fitted",
		slog.String("ticker", ticker),
		slog.Int("samples", model.SampleCount),
		slog.Float64("r_squared", model.RSquared),
	)

	return report, nil
}
