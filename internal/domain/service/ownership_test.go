package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipGuard_Authorize(t *testing.T) {
	guard := NewOwnershipGuard()
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("owner is allowed", func(t *testing.T) {
		assert.Equal(t, Allowed, guard.Authorize(owner, owner))
	})

	t.Run("non owner is denied", func(t *testing.T) {
		assert.Equal(t, Denied, guard.Authorize(stranger, owner))
	})

	t.Run("nil caller is denied", func(t *testing.T) {
		assert.Equal(t, Denied, guard.Authorize(uuid.Nil, owner))
	})

	t.Run("nil owner is denied", func(t *testing.T) {
		assert.Equal(t, Denied, guard.Authorize(owner, uuid.Nil))
	})

	t.Run("two nil identifiers are denied", func(t *testing.T) {
		assert.Equal(t, Denied, guard.Authorize(uuid.Nil, uuid.Nil))
	})

	t.Run("same id parsed twice is allowed", func(t *testing.T) {
		parsed, err := uuid.Parse(owner.String())
		require.NoError(t, err)
		assert.Equal(t, Allowed, guard.Authorize(parsed, owner))
	})
}
