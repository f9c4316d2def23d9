// Copyright (c) 2026 Stocktells. All rights reserved.

package market

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
)

// # Provider Client

// EODClient implements [Fetcher] against an EODHD-compatible provider.
//
// The provider exposes GET {base}/eod/{ticker}?fmt=json&from=...&to=...
// returning a JSON array of daily bars. Bounds are inclusive.
type EODClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewEODClient constructs a provider client.
//
// # Parameters
//   - baseURL: Provider API root (e.g. "https://eodhd.com/api").
//   - apiKey: Provider API token, passed as the api_token query parameter.
//   - logger: Structured logger for fetch telemetry.
func NewEODClient(baseURL, apiKey string, logger *slog.Logger) *EODClient {
	return &EODClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
		logger: logger,
	}
}

// providerBar mirrors the provider's wire schema for one EOD record.
type providerBar struct {
	Date     Day     `json:"date"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	AdjClose float64 `json:"adjusted_close"`
	Volume   int64   `json:"volume"`
}

/*
FetchDaily retrieves the daily bars for a ticker within an inclusive range.

Description: One GET against the provider's /eod endpoint. A 404 from the
provider means the ticker has no data and yields an empty series, not an
error; every other non-200 status is a BadGateway.

Parameters:
  - context: context.Context
  - ticker: string
  - from, to: time.Time

Returns:
  - []Bar: Chronological daily bars, possibly empty
  - error: apperr.BadGateway on transport or provider failures
*/
func (client *EODClient) FetchDaily(context context.Context, ticker string, from, to time.Time) ([]Bar, error) {

	address := fmt.Sprintf("%s/eod/%s?fmt=json&from=%s&to=%s&api_token=%s",
		client.baseURL,
		url.PathEscape(ticker),
		from.Format(dayFormat),
		to.Format(dayFormat),
		url.QueryEscape(client.apiKey),
	)

	request, err := http.NewRequestWithContext(context, http.MethodGet, address, nil)
	if err != nil {
		return nil, fmt.Errorf("market_client_request_build_failed: %w", err)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, apperr.BadGateway("Market data provider is unreachable", err)
	}
	defer func() { _ = response.Body.Close() }()

	client.logger.Debug("market_provider_fetch",
		slog.String("ticker", ticker),
		slog.Int("status", response.StatusCode),
	)

	// The provider answers 404 for unknown tickers. That is "no data",
	// not an upstream failure.
	if response.StatusCode == http.StatusNotFound {
		return []Bar{}, nil
	}

	if response.StatusCode != http.StatusOK {
		return nil, apperr.BadGateway(
			"Market data provider request failed",
			fmt.Errorf("market_client_unexpected_status: %s", response.Status),
		)
	}

	content := make([]providerBar, 0)
	if err := json.NewDecoder(response.Body).Decode(&content); err != nil {
		return nil, apperr.BadGateway("Market data provider returned a malformed response", err)
	}

	bars := make([]Bar, 0, len(content))
	for _, record := range content {
		bars = append(bars, Bar{
			Date:     record.Date,
			Open:     record.Open,
			High:     record.High,
			Low:      record.Low,
			Close:    record.Close,
			AdjClose: record.AdjClose,
			Volume:   record.Volume,
		})
	}

	return bars, nil
}
