// Copyright (c) 2026 Stocktells. All rights reserved.

/*
Package account handles the self-service lifecycle of an authenticated user.

It provides functionalities for users to view their profile, rotate their
password, and permanently delete their account with a global session sweep.

# Architecture

  - Domain: This package depends on the auth package for the User entities.
  - Contracts: Narrow interfaces over the auth repositories, so the service
    only sees the operations it actually needs.
  - Security: Account deletion always revokes every live session.
*/
package account

import (
	"context"

	"github.com/akankshakuwar/stocktells/internal/users/auth"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for account self-service.
type AccountRepository interface {
	/*
		FindProfile retrieves the transport-safe projection of an account.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *auth.Profile: Username and email
		  - error: apperr.NotFound or storage failures
	*/
	FindProfile(context context.Context, username string) (*auth.Profile, error)

	/*
		UpdatePassword replaces the stored credential for an account.

		Parameters:
		  - context: context.Context
		  - username: string
		  - newHash: string

		Returns:
		  - error: apperr.NotFound when the account no longer exists, or storage failures
	*/
	UpdatePassword(context context.Context, username, newHash string) error

	/*
		Delete removes the account row. Absent usernames are a no-op.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - error: Execution failures
	*/
	Delete(context context.Context, username string) error
}

// SessionRevoker defines the session cleanup contract for account operations.
type SessionRevoker interface {
	/*
		RevokeAll terminates every session for a username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - error: Revocation failures
	*/
	RevokeAll(context context.Context, username string) error
}
