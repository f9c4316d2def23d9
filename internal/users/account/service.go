// Copyright (c) 2026 Stocktells. All rights reserved.

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
	"github.com/akankshakuwar/stocktells/internal/platform/sec"
	"github.com/akankshakuwar/stocktells/internal/users/auth"
)

// # Service Layer

// Service orchestrates business logic for account self-service.
//
// It ensures that password rotation and account deletion follow established
// business constraints, including the global session sweep on deletion.
type Service struct {
	accountRepository AccountRepository
	sessionRevoker    SessionRevoker
	logger            *slog.Logger
}

// NewService constructs a new account [Service] with its dependencies.
func NewService(
	accountRepo AccountRepository,
	sessions SessionRevoker,
	logger *slog.Logger,
) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionRevoker:    sessions,
		logger:            logger,
	}
}

// # Profile Management

/*
Profile retrieves the transport-safe identity of a user.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *auth.Profile: Username and email
  - error: apperr.NotFound or execution failures
*/
func (service *Service) Profile(context context.Context, username string) (*auth.Profile, error) {
	profile, err := service.accountRepository.FindProfile(context, username)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// # Credential Rotation

/*
ChangePassword rotates the authenticated user's credential.

Description: Enforces the confirmation rule, hashes the new password with
bcrypt, and writes it through the repository. An account deleted between
authentication and this call surfaces as NotFound rather than a silent no-op.

Parameters:
  - context: context.Context
  - username: string
  - newPassword: string
  - confirmPassword: string

Returns:
  - error: ValidationError (mismatch), apperr.NotFound (account vanished), or storage failures
*/
func (service *Service) ChangePassword(context context.Context, username, newPassword, confirmPassword string) error {

	// The confirmation mismatch is a first-class validation failure.
	if newPassword != confirmPassword {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   auth.FieldConfirmPassword,
			Message: "Passwords do not match",
		})
	}

	// Rotation always lands on bcrypt, even for legacy-digest accounts.
	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("account_service_hash_failed: %w", err)
	}

	// NotFound from the repository passes through untouched.
	if err := service.accountRepository.UpdatePassword(context, username, hashedPassword); err != nil {
		return err
	}

	service.logger.Info("user_password_changed", slog.String("username", username))

	return nil
}

// # Account Deletion

/*
DeleteAccount performs an idempotent hard-deletion of a user account.

Description: Removes the account row and immediately terminates all active
sessions so the deleted identity cannot remain signed in anywhere. Deleting
an already-absent account succeeds.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - error: Execution failures
*/
func (service *Service) DeleteAccount(context context.Context, username string) error {

	if err := service.accountRepository.Delete(context, username); err != nil {
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}

	// Force global revocation of sessions for the deleted account. The row is
	// already gone, so a revocation failure is logged rather than returned.
	if err := service.sessionRevoker.RevokeAll(context, username); err != nil {
		service.logger.Error("account_session_sweep_failed",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
	}

	service.logger.Warn("user_account_deleted", slog.String("username", username))

	return nil
}
