// Copyright (c) 2026 Stocktells. All rights reserved.

/*
Package auth implements the identity and session layer of the dashboard.

It handles account registration, credential verification, and login session
lifecycle management via RSA-signed JWTs backed by revocable Redis records.

# Architecture

  - Service: Orchestrates business logic (SignUp, Login, Logout).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Sessions).
  - Security: Leverages bcrypt hashing with transparent upgrade of legacy
    SHA-256 digests inherited from the previous system.

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of the Stocktells platform.
//
// The username is the primary key of the account row. There is no surrogate
// ID column: every other part of the system addresses users by username.
type User struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Stored hash or legacy digest. Omitted from JSON for security.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the client-facing projection of a user account.
// It never carries credential material.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile maps a User to its transport-safe projection.
func (user *User) Profile() *Profile {
	return &Profile{
		Username: user.Username,
		Email:    user.Email,
	}
}

// Session represents an active, revocable login session stored in Redis.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldAccessToken     = "access_token"
	FieldTokenType       = "token_type"
	FieldExpiresIn       = "expires_in"
	FieldUser            = "user"
	FieldMessage         = "message"
)
