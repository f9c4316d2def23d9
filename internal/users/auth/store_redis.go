// Copyright (c) 2026 Stocktells. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/akankshakuwar/stocktells/internal/platform/constants"
)

// # Session Repository

// RedisSessionRepository implements SessionRepository using Redis.
//
// # Key Layout
//
//	auth:session:<id>            -> username        (TTL = session lifetime)
//	auth:user_sessions:<username> -> set of session IDs
//
// The per-user set lets RevokeAll terminate every device in one sweep when
// the account is deleted. Entries in the set may outlive their expired
// session keys; RevokeAll tolerates the stale members.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Create stores the session record and indexes it under the owner's set.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Persistence failures
*/
func (repository *RedisSessionRepository) Create(context context.Context, session *Session) error {

	// Derive the remaining lifetime from the session's expiry
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("redis_session_create_failed: session already expired")
	}

	key := constants.RedisPrefixSession + session.ID
	setKey := constants.RedisPrefixUserSessions + session.Username

	// Store the session record with TTL
	if err := repository.client.Set(context, key, session.Username, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}

	// Index the session under its owner. The set expires alongside the
	// longest-lived session so orphaned indexes do not accumulate.
	if err := repository.client.SAdd(context, setKey, session.ID).Err(); err != nil {
		return fmt.Errorf("redis_session_index_failed: %w", err)
	}
	_ = repository.client.Expire(context, setKey, ttl).Err()

	return nil
}

/*
IsActive reports whether the session record still exists in Redis.

Description: Expired or revoked sessions simply have no key, so a plain
existence check is sufficient.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - bool: True while the session key exists
  - error: Connectivity failures
*/
func (repository *RedisSessionRepository) IsActive(context context.Context, sessionID string) (bool, error) {
	key := constants.RedisPrefixSession + sessionID

	count, err := repository.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_session_exists_failed: %w", err)
	}

	return count > 0, nil
}

/*
Delete removes a single session record and its index entry.

Description: Used by logout. Deleting an already-gone session is a no-op.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Delete(context context.Context, sessionID string) error {
	key := constants.RedisPrefixSession + sessionID

	// Resolve the owner first so the index entry can be cleaned up
	username, err := repository.client.Get(context, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis_session_delete_lookup_failed: %w", err)
	}

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	setKey := constants.RedisPrefixUserSessions + username
	_ = repository.client.SRem(context, setKey, sessionID).Err()

	return nil
}

/*
RevokeAll removes every session belonging to the username.

Description: Global sign-out used on account deletion and password changes.
Stale set members whose session keys already expired are harmless to delete.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - error: Batch revocation failures
*/
func (repository *RedisSessionRepository) RevokeAll(context context.Context, username string) error {
	setKey := constants.RedisPrefixUserSessions + username

	sessionIDs, err := repository.client.SMembers(context, setKey).Result()
	if err != nil {
		return fmt.Errorf("redis_session_revoke_all_lookup_failed: %w", err)
	}

	// Delete each session record
	for _, sessionID := range sessionIDs {
		key := constants.RedisPrefixSession + sessionID
		if err := repository.client.Del(context, key).Err(); err != nil {
			return fmt.Errorf("redis_session_revoke_all_failed: %w", err)
		}
	}

	// Drop the index itself
	if err := repository.client.Del(context, setKey).Err(); err != nil {
		return fmt.Errorf("redis_session_revoke_all_index_failed: %w", err)
	}

	return nil
}
