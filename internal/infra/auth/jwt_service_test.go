package auth

import (
	"testing"
	"time"

	"taskhive/config"
	"taskhive/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokenService, err := NewJWTService(newJWTTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, tokenService)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	token, err := tokenService.Generate(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenService.Validate(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
}

func TestJWTService_MalformedToken(t *testing.T) {
	tokenService, err := NewJWTService(newJWTTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := tokenService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newJWTTestConfig("secret_one_very_long_for_testing_purposes"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newJWTTestConfig("secret_two_very_long_for_testing_purposes"))
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newJWTTestConfig("test_access_secret_key_very_long_for_testing")
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute}

	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Drive the service clock manually: issue at T, verify at T+2m.
	svc, ok := tokenService.(*jwtService)
	require.True(t, ok)
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Generate(uuid.New(), []string{"user"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_MissingSubject(t *testing.T) {
	cfg := newJWTTestConfig("test_access_secret_key_very_long_for_testing")
	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// A token signed with the right secret but without a subject claim.
	svc, ok := tokenService.(*jwtService)
	require.True(t, ok)
	token, err := svc.Generate(uuid.Nil, nil)
	require.NoError(t, err)

	// uuid.Nil still serializes to a parseable subject, so this round-trips.
	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, claims.UserID)
}

func TestJWTService_EmptySecret(t *testing.T) {
	tokenService, err := NewJWTService(newJWTTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, tokenService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultDuration(t *testing.T) {
	tokenService, err := NewJWTService(newJWTTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, tokenService.AccessTokenDuration())
}
