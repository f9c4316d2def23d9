// Copyright (c) 2026 Stocktells. All rights reserved.

/*
HTTP delivery layer for price history.

# Security

Stock data endpoints require an authenticated session: the dashboard gates
its charting features behind login.
*/
package market

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/akankshakuwar/stocktells/internal/platform/request"
	"github.com/akankshakuwar/stocktells/internal/platform/respond"
	"github.com/akankshakuwar/stocktells/internal/platform/validate"
)

// Handler implements the HTTP layer for market data.
type Handler struct {
	marketService *Service
}

// NewHandler constructs a new market [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{marketService: service}
}

// Register adds the market data endpoints to the shared /stocks router.
// The forecast handler registers its own routes on the same router.
func (handler *Handler) Register(router chi.Router) {
	router.Get("/{ticker}/history", handler.history)
}

/*
History serves the EOD price series for a ticker.

GET /api/v1/stocks/{ticker}/history?start=YYYY-MM-DD&end=YYYY-MM-DD

Description: Returns normalized daily bars between start and end (inclusive).
Omitted bounds default to the dashboard's standard window (2015-01-01 through
today).

Response:
  - 200: []Bar: Chronological daily bars
  - 400: Validation: Malformed ticker or dates
  - 404: ErrNotFound: No price data in the range
  - 422: Unprocessable: start after end
  - 502: BadGateway: Provider unavailable
*/
func (handler *Handler) history(writer http.ResponseWriter, request *http.Request) {
	ticker := strings.ToUpper(requestutil.Param(request, "ticker"))

	validator := &validate.Validator{}
	validator.Required("ticker", ticker).Ticker("ticker", ticker)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	from, err := requestutil.DateQuery(request, "start", DefaultRangeStart)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	to, err := requestutil.DateQuery(request, "end", time.Now().UTC())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bars, err := handler.marketService.History(request.Context(), ticker, from, to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bars)
}
