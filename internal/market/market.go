// Copyright (c) 2026 Stocktells. All rights reserved.

/*
Package market retrieves end-of-day price history for exchange-listed tickers.

It wraps an EOD-history provider behind a small client, normalizes the bars
for the dashboard, and caches fetched ranges in Redis so that repeated chart
loads do not hammer the upstream API.

# Architecture

  - Client: HTTP transport against the provider's /eod endpoint.
  - Cache: Redis-backed range cache with a short TTL.
  - Service: Orchestrates validation, cache lookup, fetch, and normalization.
*/
package market

import (
	"context"
	"time"
)

// # Domain Entities

// dayFormat is the provider's calendar-date wire format.
const dayFormat = "2006-01-02"

// Day is a calendar date serialized as YYYY-MM-DD, matching the provider's
// wire format and the dashboard's axis labels.
type Day struct {
	time.Time
}

// NewDay truncates a [time.Time] to its UTC calendar date.
func NewDay(t time.Time) Day {
	t = t.UTC()
	return Day{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dayFormat) + `"`), nil
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string.
func (d *Day) UnmarshalJSON(data []byte) error {
	parsed, err := time.Parse(`"`+dayFormat+`"`, string(data))
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// Bar is one end-of-day price record.
//
// AdjClose is the split/dividend adjusted close. When the provider omits it,
// the service falls back to the raw close so downstream consumers (charting,
// trend fitting) always have a usable series.
type Bar struct {
	Date     Day     `json:"date"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	AdjClose float64 `json:"adjusted_close"`
	Volume   int64   `json:"volume"`
}

// # Constraints

const (
	// HistoryCacheTTL bounds how stale a cached price range may be. EOD data
	// only changes once per trading day, so short is plenty.
	HistoryCacheTTL = 15 * time.Minute

	// fetchTimeout caps a single provider round trip. It must fit inside
	// constants.GlobalRequestTimeout with room for the rest of the request.
	fetchTimeout = 10 * time.Second
)

// DefaultRangeStart is the beginning of the default chart window when the
// caller does not supply a start date.
var DefaultRangeStart = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

// # Contracts

// Fetcher defines the transport contract for retrieving EOD bars.
type Fetcher interface {
	/*
		FetchDaily returns the provider's bars for a ticker and date range.

		Parameters:
		  - context: context.Context
		  - ticker: string (provider ticker, e.g. "AAPL" or "NVD.F")
		  - from, to: time.Time (inclusive calendar bounds)

		Returns:
		  - []Bar: Possibly empty series, in provider order
		  - error: apperr.BadGateway on provider failures
	*/
	FetchDaily(context context.Context, ticker string, from, to time.Time) ([]Bar, error)
}

// HistoryCache defines the volatile storage contract for fetched ranges.
type HistoryCache interface {
	/*
		Get returns the cached series for a key.

		Returns:
		  - []Bar: Cached series when hit
		  - bool: True on a cache hit
		  - error: Connectivity failures
	*/
	Get(context context.Context, key string) ([]Bar, bool, error)

	/*
		Set stores a series under a key with a TTL.
	*/
	Set(context context.Context, key string, bars []Bar, ttl time.Duration) error
}
