// Copyright (c) 2026 Stocktells. All rights reserved.

/*
HTTP delivery layer for trend forecasts.

Mounted alongside the market history endpoints under /stocks, behind the
same authentication requirement.
*/
package forecast

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akankshakuwar/stocktells/internal/market"
	requestutil "github.com/akankshakuwar/stocktells/internal/platform/request"
	"github.com/akankshakuwar/stocktells/internal/platform/respond"
	"github.com/akankshakuwar/stocktells/internal/platform/validate"
)

// Handler implements the HTTP layer for trend forecasting.
type Handler struct {
	forecastService *Service
}

// NewHandler constructs a new forecast [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{forecastService: service}
}

// Register adds the forecast endpoints to the shared /stocks router.
func (handler *Handler) Register(router chi.Router) {
	router.Get("/{ticker}/forecast", handler.forecast)
}

/*
Forecast serves the fitted trend and next-day prediction for a ticker.

GET /api/v1/stocks/{ticker}/forecast?start=YYYY-MM-DD&end=YYYY-MM-DD

Description: Fits an ordinary-least-squares line to the ticker's adjusted
closes in the range (defaults match the history endpoint) and extrapolates
one day past the final bar.

Response:
  - 200: Report: Model metrics, fitted series, next-day prediction
  - 400: Validation: Malformed ticker or dates
  - 404: ErrNotFound: No price data in the range
  - 422: Unprocessable: Too few samples to fit
  - 502: BadGateway: Provider unavailable
*/
func (handler *Handler) forecast(writer http.ResponseWriter, request *http.Request) {
	ticker := strings.ToUpper(requestutil.Param(request, "ticker"))

	validator := &validate.Validator{}
	validator.Required("ticker", ticker).Ticker("ticker", ticker)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	from, err := requestutil.DateQuery(request, "start", market.DefaultRangeStart)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	to, err := requestutil.DateQuery(request, "end", time.Now().UTC())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.forecastService.Forecast(request.Context(), ticker, from, to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}
