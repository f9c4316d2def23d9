// Copyright (c) 2026 Stocktells. All rights reserved.

/*
Package forecast fits a linear price trend and extrapolates one day ahead.

It regresses adjusted close against the ordinal day number of each bar using
ordinary least squares, then reports the fit quality (R², MSE) alongside a
single next-day prediction.

# Accuracy

The report carries the measured R² and MSE of the fit and nothing else. A
straight line through noisy market data is a trend indicator, not a trading
signal, and the API does not dress it up as one.
*/
package forecast

import "errors"

// # Errors

var (
	// ErrInsufficientData indicates fewer than two samples were provided.
	ErrInsufficientData = errors.New("forecast: at least two samples are required")

	// ErrDegenerateInput indicates all samples share one x value, so no
	// line is determined.
	ErrDegenerateInput = errors.New("forecast: input has no x variance")
)

// # Model

// Model is a fitted least-squares line y = Slope*x + Intercept with its
// in-sample quality metrics.
type Model struct {
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	RSquared    float64 `json:"r_squared"`
	MSE         float64 `json:"mse"`
	SampleCount int     `json:"sample_count"`
}

/*
Fit computes the ordinary-least-squares line through (xs[i], ys[i]).

Parameters:
  - xs: []float64 (ordinal day numbers)
  - ys: []float64 (adjusted closes, same length)

Returns:
  - *Model: Fitted line with R² and MSE
  - error: ErrInsufficientData or ErrDegenerateInput
*/
func Fit(xs, ys []float64) (*Model, error) {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return nil, ErrInsufficientData
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}

	if sxx == 0 {
		return nil, ErrDegenerateInput
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	// In-sample residuals against the total variance.
	var sse, sst float64
	for i := 0; i < n; i++ {
		residual := ys[i] - (slope*xs[i] + intercept)
		sse += residual * residual
		dy := ys[i] - meanY
		sst += dy * dy
	}

	// A flat series has zero total variance and the fit reproduces it exactly.
	rSquared := 1.0
	if sst > 0 {
		rSquared = 1.0 - sse/sst
	}

	return &Model{
		Slope:       slope,
		Intercept:   intercept,
		RSquared:    rSquared,
		MSE:         sse / float64(n),
		SampleCount: n,
	}, nil
}

// Predict evaluates the fitted line at x.
func (model *Model) Predict(x float64) float64 {
	return model.Slope*x + model.Intercept
}
