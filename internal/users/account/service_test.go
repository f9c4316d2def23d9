// Copyright (c) 2026 Stocktells. All rights reserved.

package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
	"github.com/akankshakuwar/stocktells/internal/platform/sec"
	"github.com/akankshakuwar/stocktells/internal/users/auth"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindProfile(ctx context.Context, username string) (*auth.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Profile), args.Error(1)
}

func (m *MockAccountRepository) UpdatePassword(ctx context.Context, username, newHash string) error {
	args := m.Called(ctx, username, newHash)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// MockSessionRevoker is a mock implementation of SessionRevoker.
type MockSessionRevoker struct {
	mock.Mock
}

func (m *MockSessionRevoker) RevokeAll(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func newTestService(accounts *MockAccountRepository, sessions *MockSessionRevoker) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(accounts, sessions, logger)
}

func TestService_Profile(t *testing.T) {
	t.Run("returns the stored profile", func(t *testing.T) {
		accounts := &MockAccountRepository{}
		accounts.On("FindProfile", mock.Anything, "alice").
			Return(&auth.Profile{Username: "alice", Email: "alice@example.com"}, nil)

		service := newTestService(accounts, &MockSessionRevoker{})
		profile, err := service.Profile(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", profile.Username)
		assert.Equal(t, "alice@example.com", profile.Email)
	})

	t.Run("missing account surfaces as not found", func(t *testing.T) {
		accounts := &MockAccountRepository{}
		accounts.On("FindProfile", mock.Anything, "ghost").Return(nil, apperr.NotFound("User"))

		service := newTestService(accounts, &MockSessionRevoker{})
		_, err := service.Profile(context.Background(), "ghost")

		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("rotates the credential to a bcrypt hash", func(t *testing.T) {
		accounts := &MockAccountRepository{}
		accounts.On("UpdatePassword", mock.Anything, "alice", mock.MatchedBy(func(hash string) bool {
			return sec.CheckPasswordHash("N3wSecret!", hash)
		})).Return(nil)

		service := newTestService(accounts, &MockSessionRevoker{})
		err := service.ChangePassword(context.Background(), "alice", "N3wSecret!", "N3wSecret!")

		require.NoError(t, err)
		accounts.AssertExpectations(t)
	})

	t.Run("confirmation mismatch never reaches storage", func(t *testing.T) {
		accounts := &MockAccountRepository{}

		service := newTestService(accounts, &MockSessionRevoker{})
		err := service.ChangePassword(context.Background(), "alice", "N3wSecret!", "different")

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		accounts.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("vanished account surfaces as not found", func(t *testing.T) {
		accounts := &MockAccountRepository{}
		accounts.On("UpdatePassword", mock.Anything, "ghost", mock.AnythingOfType("string")).
			Return(apperr.NotFound("User"))

		service := newTestService(accounts, &MockSessionRevoker{})
		err := service.ChangePassword(context.Background(), "ghost", "N3wSecret!", "N3wSecret!")

		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_DeleteAccount(t *testing.T) {
	t.Run("deletes the row and sweeps every session", func(t *testing.T) {
		accounts := &MockAccountRepository{}
		sessions := &MockSessionRevoker{}
		accounts.On("Delete", mock.Anything, "alice").Return(nil)
		sessions.On("RevokeAll", mock.Anything, "alice").Return(nil)

		service := newTestService(accounts, sessions)
		err := service.DeleteAccount(context.Background(), "alice")

		require.NoError(t, err)
		accounts.AssertExpectations(t)
		sessions.AssertExpectations(t)
	})

	t.Run("deleting an absent account is idempotent", func(t *testing.T) {
		accounts := &MockAccountRepository{}
		sessions := &MockSessionRevoker{}
		// The repository treats an absent row as a successful no-op.
		accounts.On("Delete", mock.Anything, "ghost").Return(nil)
		sessions.On("RevokeAll", mock.Anything, "ghost").Return(nil)

		service := newTestService(accounts, sessions)
		err := service.DeleteAccount(context.Background(), "ghost")

		assert.NoError(t, err)
	})

	t.Run("session sweep failure does not fail the deletion", func(t *testing.T) {
		accounts := &MockAccountRepository{}
		sessions := &MockSessionRevoker{}
		accounts.On("Delete", mock.Anything, "alice").Return(nil)
		sessions.On("RevokeAll", mock.Anything, "alice").Return(errors.New("redis down"))

		service := newTestService(accounts, sessions)
		err := service.DeleteAccount(context.Background(), "alice")

		assert.NoError(t, err)
	})
}
