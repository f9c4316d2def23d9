// Copyright (c) 2026 Stocktells. All rights reserved.

package market

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
)

const fixtureEOD = `[
	{"date":"2024-02-13","open":675.066,"high":684.219,"low":648.659,"close":668.445,"adjusted_close":67.705,"volume":120000},
	{"date":"2024-02-14","open":670.000,"high":690.000,"low":665.000,"close":680.120,"adjusted_close":68.890,"volume":98000}
]`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEODClient_FetchDaily(t *testing.T) {
	t.Run("parses the provider payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/eod/NVD.F", request.URL.Path)
			query := request.URL.Query()
			assert.Equal(t, "json", query.Get("fmt"))
			assert.Equal(t, "2024-02-13", query.Get("from"))
			assert.Equal(t, "2024-02-14", query.Get("to"))
			assert.Equal(t, "test-key", query.Get("api_token"))

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(fixtureEOD))
		}))
		defer server.Close()

		client := NewEODClient(server.URL, "test-key", testLogger())
		bars, err := client.FetchDaily(context.Background(),
			"NVD.F",
			time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
		)

		require.NoError(t, err)
		require.Len(t, bars, 2)
		assert.Equal(t, "2024-02-13", bars[0].Date.Format("2006-01-02"))
		assert.InDelta(t, 67.705, bars[0].AdjClose, 1e-9)
		assert.InDelta(t, 668.445, bars[0].Close, 1e-9)
		assert.Equal(t, int64(98000), bars[1].Volume)
	})

	t.Run("unknown ticker yields an empty series", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewEODClient(server.URL, "test-key", testLogger())
		bars, err := client.FetchDaily(context.Background(), "NOPE",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		)

		require.NoError(t, err)
		assert.Empty(t, bars)
	})

	t.Run("provider failure maps to bad gateway", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewEODClient(server.URL, "test-key", testLogger())
		_, err := client.FetchDaily(context.Background(), "AAPL",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		)

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "BAD_GATEWAY", appError.Code)
	})

	t.Run("malformed payload maps to bad gateway", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"not":"an array"}`))
		}))
		defer server.Close()

		client := NewEODClient(server.URL, "test-key", testLogger())
		_, err := client.FetchDaily(context.Background(), "AAPL",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		)

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "BAD_GATEWAY", appError.Code)
	})
}
