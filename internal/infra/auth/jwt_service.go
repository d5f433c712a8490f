// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"taskhive/config"
	"taskhive/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Symmetric secret for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
	now       func() time.Time
}

// accessClaims is the wire shape of the token payload.
type accessClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: cfg.AccessTokenTTL(),
		now:       time.Now,
	}, nil
}

// Generate creates a signed access token bound to the user's id, with the
// roles riding along as a claim for stateless authorization.
func (s *jwtService) Generate(userID uuid.UUID, roles []string) (string, error) {
	issuedAt := s.now()
	claims := accessClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the signature, expiry and subject of a token string and
// returns the embedded claims. Failures map onto the domain sentinels so
// callers can log the precise cause without leaking it to clients.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, translateJWTError(err)
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid {
		return nil, service.ErrTokenMalformed
	}

	if claims.Subject == "" {
		return nil, service.ErrTokenMissingSubject
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMissingSubject, "subject is not a valid id")
	}

	return &service.Claims{
		UserID: userID,
		Roles:  claims.Roles,
	}, nil
}

// AccessTokenDuration returns the configured lifetime of issued tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func translateJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return service.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ErrTokenMalformed
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
