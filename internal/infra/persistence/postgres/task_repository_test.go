package postgres

import (
	"testing"

	"taskhive/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderClause(t *testing.T) {
	t.Run("defaults to created_at descending", func(t *testing.T) {
		clause, err := buildOrderClause("", "")
		require.NoError(t, err)
		assert.Equal(t, "created_at DESC, id ASC", clause)
	})

	t.Run("ascending updated_at", func(t *testing.T) {
		clause, err := buildOrderClause(repository.SortByUpdatedAt, repository.SortAsc)
		require.NoError(t, err)
		assert.Equal(t, "updated_at ASC, id ASC", clause)
	})

	t.Run("priority sorts by rank not label", func(t *testing.T) {
		clause, err := buildOrderClause(repository.SortByPriority, repository.SortDesc)
		require.NoError(t, err)
		assert.Contains(t, clause, "CASE priority WHEN 'low' THEN 0")
		assert.Contains(t, clause, "DESC, id ASC")
	})

	t.Run("status sorts by workflow progression", func(t *testing.T) {
		clause, err := buildOrderClause(repository.SortByStatus, repository.SortAsc)
		require.NoError(t, err)
		assert.Contains(t, clause, "CASE status WHEN 'todo' THEN 0")
	})

	t.Run("due_date keeps nulls last", func(t *testing.T) {
		clause, err := buildOrderClause(repository.SortByDueDate, repository.SortAsc)
		require.NoError(t, err)
		assert.Equal(t, "due_date ASC NULLS LAST, id ASC", clause)
	})

	t.Run("rejects unknown sort field", func(t *testing.T) {
		_, err := buildOrderClause("password_hash", repository.SortAsc)
		assert.Error(t, err)
	})

	t.Run("rejects unknown sort order", func(t *testing.T) {
		_, err := buildOrderClause(repository.SortByCreatedAt, "sideways")
		assert.Error(t, err)
	})
}
