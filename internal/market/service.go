// Copyright (c) 2026 Stocktells. All rights reserved.

package market

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
	"github.com/akankshakuwar/stocktells/internal/platform/constants"
)

// # Service Layer

// Service orchestrates price-history retrieval for the dashboard.
type Service struct {
	fetcher Fetcher
	cache   HistoryCache
	logger  *slog.Logger
}

// NewService constructs a market [Service] with its dependencies.
func NewService(fetcher Fetcher, cache HistoryCache, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
	}
}

/*
History returns the normalized EOD series for a ticker and inclusive range.

Description: Serves from the Redis range cache when possible; otherwise
fetches from the provider, fills missing adjusted closes from the raw close,
caches the result, and returns it. A ticker with no data in the range is a
NotFound, matching the dashboard's "no data found" state.

Parameters:
  - context: context.Context
  - ticker: string (already validated and uppercased by the transport layer)
  - from, to: time.Time

Returns:
  - []Bar: Chronological normalized bars
  - error: Unprocessable (inverted range), NotFound (no data), BadGateway (provider down)
*/
func (service *Service) History(context context.Context, ticker string, from, to time.Time) ([]Bar, error) {

	if from.After(to) {
		return nil, apperr.Unprocessable("Start date must not be after end date")
	}

	key := cacheKey(ticker, from, to)

	// ── 1. Cache Lookup ───────────────────────────────────────────────────
	// A cache failure is downgraded to a miss: the provider is the source of
	// truth and Redis being down must not take the chart down with it.
	bars, hit, err := service.cache.Get(context, key)
	if err != nil {
		service.logger.Warn("market_cache_lookup_failed",
			slog.String("ticker", ticker),
			slog.String("error", err.Error()),
		)
	}
	if hit {
		return bars, nil
	}

	// ── 2. Provider Fetch ─────────────────────────────────────────────────
	bars, err = service.fetcher.FetchDaily(context, ticker, from, to)
	if err != nil {
		return nil, err
	}

	if len(bars) == 0 {
		return nil, apperr.NotFound("Price data")
	}

	// ── 3. Normalization ──────────────────────────────────────────────────
	// Some feeds omit the adjusted close for recent or thinly traded bars.
	// Downstream consumers regress against AdjClose, so it must be populated.
	for index := range bars {
		if bars[index].AdjClose == 0 {
			bars[index].AdjClose = bars[index].Close
		}
	}

	// ── 4. Cache Fill ─────────────────────────────────────────────────────
	if err := service.cache.Set(context, key, bars, HistoryCacheTTL); err != nil {
		service.logger.Warn("market_cache_fill_failed",
			slog.String("ticker", ticker),
			slog.String("error", err.Error()),
		)
	}

	return bars, nil
}

// cacheKey derives the Redis key for a ticker and inclusive date range.
func cacheKey(ticker string, from, to time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s",
		constants.RedisPrefixMarketEOD,
		ticker,
		from.Format(dayFormat),
		to.Format(dayFormat),
	)
}
