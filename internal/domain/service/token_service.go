package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Token verification failure kinds. Each maps onto the same generic
// "unauthorized" response at the HTTP boundary; the distinction exists for
// internal logging only.
var (
	// ErrTokenMalformed indicates the token is not a structurally valid JWT.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenSignatureInvalid indicates the token was not signed with the configured secret.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	// ErrTokenExpired indicates the token's expiry has elapsed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenMissingSubject indicates the token carries no usable subject claim.
	ErrTokenMissingSubject = errors.New("token is missing a subject claim")
)

// Claims is the verified identity carried by an access token.
type Claims struct {
	UserID uuid.UUID // The subject: the authenticated user's unique identifier.
	Roles  []string  // Authorization roles baked into the token at issuance.
}

// TokenService defines the interface for issuing and verifying access tokens.
// Tokens are self-contained and stateless: verification relies purely on the
// signature and expiry, no server-side token table exists.
type TokenService interface {
	// Generate issues a signed, time-limited access token for the given user.
	Generate(userID uuid.UUID, roles []string) (string, error)

	// Validate checks a token's signature, expiry and subject and returns
	// the embedded claims. Failures map onto the ErrToken* sentinels.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured lifetime of issued tokens.
	AccessTokenDuration() time.Duration
}
