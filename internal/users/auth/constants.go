// Copyright (c) 2026 Stocktells. All rights reserved.

package auth

import "time"

// # Authentication Constraints

const (
	// SessionTTL is the duration a login session (and its JWT) remains valid.
	// One trading day with headroom; the dashboard re-authenticates after.
	SessionTTL = 24 * time.Hour

	// PasswordMinLength is the minimum accepted password length at sign-up
	// and password change. Legacy imported accounts are exempt until their
	// next password change.
	PasswordMinLength = 8

	// UsernameMinLength and UsernameMaxLength bound the account identifier.
	UsernameMinLength = 3
	UsernameMaxLength = 30
)
