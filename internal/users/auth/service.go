// Copyright (c) 2026 Stocktells. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akankshakuwar/stocktells/internal/platform/apperr"
	"github.com/akankshakuwar/stocktells/internal/platform/sec"
	"github.com/akankshakuwar/stocktells/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string bound to a session.
	//
	// # Parameters
	//   - username: The account identifier.
	//   - sessionID: The revocable server-side session record.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an error if signing fails.
	GenerateAccessToken(username, sessionID string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, sign-up,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

// NewService constructs a new authentication [Service] with its dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		logger:            logger,
	}
}

// # Registration Flow

// SignUpInput holds the data required to enroll a new member.
type SignUpInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

/*
SignUp validates, hashes, and persists a brand new user account.

Description: Enforces the password confirmation rule, hashes the credential
with bcrypt, and inserts the row. Uniqueness is delegated entirely to the
database primary key, so two racing sign-ups for the same username resolve
to exactly one account and one Conflict.

Parameters:
  - context: context.Context
  - input: SignUpInput

Returns:
  - *Profile: Created account projection
  - error: ValidationError (password mismatch), Conflict (username taken), or storage errors
*/
func (service *Service) SignUp(context context.Context, input SignUpInput) (*Profile, error) {

	// The confirmation mismatch is a first-class validation failure, not a
	// silently ignored branch.
	if input.Password != input.ConfirmPassword {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldConfirmPassword,
			Message: "Passwords do not match",
		})
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
	}

	// Persist the user. A duplicate username surfaces here as Conflict
	// straight from the unique-violation mapping.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_signed_up", slog.String("username", user.Username))

	return user.Profile(), nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *Profile
}

/*
Login validates user credentials and issues a session-bound access token.

Description: Verifies identity with a constant-time credential comparison,
transparently upgrades legacy SHA-256 digests to bcrypt, and registers a
revocable session record before minting the JWT.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session credentials
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	user, err := service.userRepository.FindByUsername(context, input.Username)

	// If (err != nil) the user does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Constant-time verification against either bcrypt or a legacy digest
	ok, needsUpgrade := sec.VerifyPassword(input.Password, user.Password)
	if !ok {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Opportunistic rehash: accounts imported with a raw SHA-256 digest are
	// moved to bcrypt on their first successful login. A failed upgrade does
	// not block the login; the next one retries.
	if needsUpgrade {
		if upgraded, hashErr := sec.HashPassword(input.Password); hashErr == nil {
			if updateErr := service.userRepository.UpdatePassword(context, user.Username, upgraded); updateErr != nil {
				service.logger.Warn("legacy_password_upgrade_failed",
					slog.String("username", user.Username),
					slog.String("error", updateErr.Error()),
				)
			} else {
				service.logger.Info("legacy_password_upgraded", slog.String("username", user.Username))
			}
		}
	}

	// Register the revocable session record before minting the token
	expiresAt := time.Now().Add(SessionTTL)
	session := &Session{
		ID:        uuid.New(),
		Username:  user.Username,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}

	if err := service.sessionRepository.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	// Mint the session-bound Access Token
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.Username, session.ID, SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("user_logged_in", slog.String("username", user.Username))

	return &LoginSession{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        user.Profile(),
	}, nil
}

/*
Logout terminates the session identified by the caller's token.

Description: Removes the server-side session record so the JWT stops
authenticating immediately. Logging out an already-revoked session is
considered successful (idempotent operation).

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, sessionID string) error {
	if err := service.sessionRepository.Delete(context, sessionID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}
	return nil
}
