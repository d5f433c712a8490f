package auth

import (
	"strings"
	"testing"

	"taskhive/config"
	domainerrors "taskhive/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	strongPassword := "Str0ngP@ss"
	hash, err := hasher.Hash(strongPassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, strongPassword, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(strongPassword, hash))
	assert.False(t, hasher.Check("otherPassword1!", hash))
}

func TestBcryptHasher_HashRejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// 73 bytes: beyond bcrypt's input bound. Must be rejected, not truncated.
	overlong := strings.Repeat("A", 70) + "a1!"
	_, err := hasher.Hash(overlong + "x")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	// Exactly 72 bytes is still fine.
	hash, err := hasher.Hash(overlong[:69] + "a1!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))

	// A malformed digest is a mismatch, never a panic or error.
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_LengthMessagesFollowPolicy(t *testing.T) {
	cfg := &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength: 12,
			MaxLength: 20,
		},
	}
	hasher := NewBcryptHasher(cfg)

	err := hasher.ValidatePasswordStrength("short")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	assert.Contains(t, err.Error(), "at least 12 characters")

	err = hasher.ValidatePasswordStrength(strings.Repeat("a", 21))
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	assert.Contains(t, err.Error(), "at most 20 characters")
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Str0ngP@ss",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "must be at least 8 characters long"},
		{strings.Repeat("Aa1!", 19), "must be at most 72 characters long"},
		{"password123!", "must contain at least one uppercase letter"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"PasswordABC!", "must contain at least one digit"},
		{"Password123", "must contain at least one special character"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
		assert.Contains(t, err.Error(), tc.expectedErr, "Error message should contain: %s", tc.expectedErr)
	}
}

func TestBcryptHasher_RelaxedPolicy(t *testing.T) {
	cfg := &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   false,
		},
	}
	hasher := NewBcryptHasher(cfg)

	// Without the special-character requirement this is acceptable.
	assert.NoError(t, hasher.ValidatePasswordStrength("Password123"))
	assert.Error(t, hasher.ValidatePasswordStrength("password123"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))

	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))

	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))

	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))
}

func TestBcryptHasher_UnicodePassword(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	// Unicode letters satisfy the case requirements.
	assert.NoError(t, hasher.ValidatePasswordStrength("Pässphräse123!"))
}
