// Copyright (c) 2026 Stocktells. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akankshakuwar/stocktells/internal/platform/sec"
)

/*
TestHashPassword verifies the bcrypt round trip.
*/
func TestHashPassword(t *testing.T) {
	password := "Sup3r-Secret!"

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	// 1. The hash must not be the plaintext or the legacy digest
	assert.NotEqual(t, password, hash)
	assert.False(t, sec.IsLegacyDigest(hash))

	// 2. Correct password verifies, wrong one does not
	assert.True(t, sec.CheckPasswordHash(password, hash))
	assert.False(t, sec.CheckPasswordHash("wrong-password", hash))
}

/*
TestLegacyDigest verifies the SHA-256 hex format of imported credentials.
*/
func TestLegacyDigest(t *testing.T) {
	// Known vector: sha256("password")
	digest := sec.LegacyDigest("password")
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", digest)

	// Deterministic, unlike bcrypt
	assert.Equal(t, digest, sec.LegacyDigest("password"))
}

/*
TestIsLegacyDigest distinguishes legacy digests from bcrypt hashes.
*/
func TestIsLegacyDigest(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		isLegacy bool
	}{
		{"sha256_hex", sec.LegacyDigest("password"), true},
		{"uppercase_hex", "5E884898DA28047151D0E56F8DC6292773603D0D6AABBDD62A11EF721D1542D8", true},
		{"bcrypt_hash", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", false},
		{"wrong_length", "abc123", false},
		{"right_length_not_hex", "zz884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isLegacy, sec.IsLegacyDigest(tt.stored))
		})
	}
}

/*
TestVerifyPassword covers both storage formats and the upgrade flag.
*/
func TestVerifyPassword(t *testing.T) {
	t.Run("bcrypt_credential", func(t *testing.T) {
		hash, err := sec.HashPassword("Sup3r-Secret!")
		require.NoError(t, err)

		ok, needsUpgrade := sec.VerifyPassword("Sup3r-Secret!", hash)
		assert.True(t, ok)
		assert.False(t, needsUpgrade)

		ok, needsUpgrade = sec.VerifyPassword("wrong", hash)
		assert.False(t, ok)
		assert.False(t, needsUpgrade)
	})

	t.Run("legacy_credential", func(t *testing.T) {
		stored := sec.LegacyDigest("Sup3r-Secret!")

		// A match against a legacy digest must request a rehash
		ok, needsUpgrade := sec.VerifyPassword("Sup3r-Secret!", stored)
		assert.True(t, ok)
		assert.True(t, needsUpgrade)

		// A miss must not request one
		ok, needsUpgrade = sec.VerifyPassword("wrong", stored)
		assert.False(t, ok)
		assert.False(t, needsUpgrade)
	})
}
