// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"taskhive/config"
	domainerrors "taskhive/internal/domain/errors"
	"taskhive/internal/domain/service"
)

// Defaults for the canonical strength policy: 8-72 characters with at least
// one uppercase letter, one lowercase letter, one digit and one special
// character. The 72 limit is bcrypt's input bound; overlong passwords are
// rejected, never truncated, so no two distinct passwords can share a hash.
const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{
		MinLength:        defaultMinPasswordLength,
		MaxLength:        defaultMaxPasswordLength,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
		if policy.MinLength <= 0 {
			policy.MinLength = defaultMinPasswordLength
		}
		// bcrypt ignores input beyond 72 bytes, so the cap can only shrink.
		if policy.MaxLength <= 0 || policy.MaxLength > defaultMaxPasswordLength {
			policy.MaxLength = defaultMaxPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost factor and
// the default strength policy. Lower costs are useful in tests.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	hasher := NewBcryptHasher(nil).(*bcryptHasher)
	hasher.cost = cost

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > defaultMaxPasswordLength {
		return "", domainerrors.ErrPasswordStrength.WrapMessage("password exceeds the maximum length")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
// A malformed hash yields false, never an error.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the plaintext against the configured
// policy and reports the first unmet requirement.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			fmt.Sprintf("password must be at least %d characters long", h.policy.MinLength))
	}
	if len(password) > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			fmt.Sprintf("password must be at most %d characters long", h.policy.MaxLength))
	}
	if h.policy.RequireUppercase && !h.hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !h.hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !h.hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one digit")
	}
	if h.policy.RequireSpecial && !h.hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one special character")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
