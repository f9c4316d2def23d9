// Copyright (c) 2026 Stocktells. All rights reserved.

package sec

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// All newly created or rotated credentials are stored in this format. The
// unsalted SHA-256 hex digest used by the legacy system is accepted for
// verification only (see [VerifyPassword]) and is upgraded on first use.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its bcrypt hash.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// LegacyDigest returns the hex-encoded SHA-256 digest of the password.
//
// This is the storage format of the system Stocktells was migrated from:
// a single fast hash, no per-user salt. It exists only so that accounts
// imported from that system can still sign in.
func LegacyDigest(plainTextPassword string) string {
	sum := sha256.Sum256([]byte(plainTextPassword))
	return hex.EncodeToString(sum[:])
}

// IsLegacyDigest reports whether a stored credential is a legacy SHA-256
// hex digest rather than a bcrypt hash.
func IsLegacyDigest(stored string) bool {
	if len(stored) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(stored)
	return err == nil
}

// VerifyPassword checks a plain-text password against a stored credential in
// either supported format.
//
// The returned needsUpgrade flag is true when the credential matched a legacy
// digest; callers should rehash with [HashPassword] and persist the result.
func VerifyPassword(plainTextPassword, stored string) (ok, needsUpgrade bool) {
	if IsLegacyDigest(stored) {
		digest := LegacyDigest(plainTextPassword)
		// Constant-time comparison; the legacy system used plain string equality.
		match := subtle.ConstantTimeCompare([]byte(digest), []byte(stored)) == 1
		return match, match
	}
	return CheckPasswordHash(plainTextPassword, stored), false
}
