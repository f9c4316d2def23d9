// Copyright (c) 2026 Stocktells. All rights reserved.

// PostgreSQL storage for user accounts.
//
// # Architecture
//
// Repositories in this package are strictly separated from domain logic. They
// implement domain-defined interfaces (e.g., [UserRepository]) using the
// [pgxpool.Pool] connection manager.
//
// # Error Mapping
//
// Storage-specific errors (like pgx.ErrNoRows or SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] types via the dberr bridge to avoid leaking
// storage implementation details.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
	"github.com/akankshakuwar/stocktells/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new user record into the users.account table.

Description: Inserts the account row, relying on the username primary key to
reject duplicates. Timestamps are initialized if not provided.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict when the username is already taken, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			username, email, password, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.Username,
		user.Email,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Username is already taken")
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByUsername retrieves a user record by their unique username.

Description: Credential-bearing lookup used by the login flow. The password
column is included, so the result must never be serialized to a client.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	const query = `
		SELECT username, email, password, createdat, updatedat
		FROM users.account
		WHERE username = $1`

	user := &User{}
	err := repository.pool.QueryRow(context, query, username).Scan(
		&user.Username,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_username_failed: %w", err)
	}

	return user, nil
}

/*
FindProfile retrieves the transport-safe projection of a user account.

Description: Selects only username and email. The credential column never
leaves the database on this path.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *Profile: Username and email
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindProfile(context context.Context, username string) (*Profile, error) {
	const query = `
		SELECT username, email
		FROM users.account
		WHERE username = $1`

	profile := &Profile{}
	err := repository.pool.QueryRow(context, query, username).Scan(
		&profile.Username,
		&profile.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_profile_failed: %w", err)
	}

	return profile, nil
}

/*
UpdatePassword updates only the stored credential for a specific user.

Description: Checks the affected-row count so that a password change against
an account deleted mid-session surfaces as NotFound instead of silently
succeeding.

Parameters:
  - context: context.Context
  - username: string
  - newHash: string

Returns:
  - error: apperr.NotFound when the account no longer exists, or execution errors
*/
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, username, newHash string) error {
	const query = `
		UPDATE users.account
		SET password = $2, updatedat = $3
		WHERE username = $1`

	tag, err := repository.pool.Exec(context, query, username, newHash, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_user_repo_update_password_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

/*
Delete permanently removes a user account by username.

Description: Hard delete of the account row. Deleting an absent username
succeeds without touching any rows (idempotent).

Parameters:
  - context: context.Context
  - username: string

Returns:
  - error: Execution failures
*/
func (repository *PostgresUserRepository) Delete(context context.Context, username string) error {
	const query = "DELETE FROM users.account WHERE username = $1"

	_, err := repository.pool.Exec(context, query, username)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_delete_failed: %w", err)
	}

	return nil
}
