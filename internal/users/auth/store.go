// Copyright (c) 2026 Stocktells. All rights reserved.

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByUsername returns the account with the given username,
		including its stored credential material.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindProfile returns the transport-safe projection of the account,
		never touching the credential column.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *Profile: Username and email only
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindProfile(context context.Context, username string) (*Profile, error)

	/*
		Create persists a brand-new user account to the storage.

		The primary key on username is the single authority on uniqueness:
		a racing duplicate insert surfaces as an apperr.Conflict.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on duplicate username, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		UpdatePassword replaces only the user's stored credential.

		Updating a non-existent username is an error, not a silent no-op:
		the repository reports apperr.NotFound when no row was touched.

		Parameters:
		  - context: context.Context
		  - username: string
		  - newHash: string

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	UpdatePassword(context context.Context, username, newHash string) error

	/*
		Delete removes the account row. Deleting an absent username is a no-op.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, username string) error
}

// # Session Data Access

// SessionRepository defines the data access contract for login sessions.
//
// Sessions live in Redis under a TTL, plus a per-user index set so that
// account deletion can revoke every device at once.
type SessionRepository interface {

	/*
		Create persists a new session record for an authenticated login.

		Parameters:
		  - context: context.Context
		  - session: *Session

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, session *Session) error

	/*
		IsActive reports whether the session record still exists.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - bool: True while the session has not been revoked or expired
		  - error: Connectivity failures
	*/
	IsActive(context context.Context, sessionID string) (bool, error)

	/*
		Delete removes a single session. Deleting an absent session is a no-op.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, sessionID string) error

	/*
		RevokeAll removes every active session belonging to the username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - error: Batch revocation failures
	*/
	RevokeAll(context context.Context, username string) error
}
