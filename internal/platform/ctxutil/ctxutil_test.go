// Copyright (c) 2026 Stocktells. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akankshakuwar/stocktells/internal/platform/ctxutil"
	"github.com/akankshakuwar/stocktells/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies that AuthClaims can be stored in context.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{
		Username:  "alice",
		SessionID: "session-123",
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithAuthUser(ctx, claims)
	retrieved := ctxutil.GetAuthUser(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "alice", retrieved.Username)
	assert.Equal(t, "session-123", retrieved.SessionID)
}

/*
TestContext_Identity verifies the IsAuthenticated and CurrentUser helpers.
*/
func TestContext_Identity(t *testing.T) {
	ctx := context.Background()

	// Anonymous context
	assert.False(t, ctxutil.IsAuthenticated(ctx))
	assert.Empty(t, ctxutil.CurrentUser(ctx))

	// Authenticated context
	ctx = ctxutil.WithAuthUser(ctx, &sec.AuthClaims{Username: "alice"})
	assert.True(t, ctxutil.IsAuthenticated(ctx))
	assert.Equal(t, "alice", ctxutil.CurrentUser(ctx))
}
