package repository

import (
	"context"
	"errors"

	"taskhive/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist. Cross-tenant
// lookups are collapsed into this same error by the use case layer so the
// caller cannot distinguish "not yours" from "does not exist".
var ErrTaskNotFound = errors.New("task not found")

// Sort field names accepted by ListByOwner.
const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByDueDate   = "due_date"
	SortByPriority  = "priority"
	SortByStatus    = "status"
)

// Sort directions accepted by ListByOwner.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Paging bounds applied to task listings.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// TaskFilter narrows and orders the result of a task listing. Zero values
// mean "no filter": a nil Status or Priority matches every task, Limit 0
// falls back to the repository default.
type TaskFilter struct {
	Status    *entity.TaskStatus
	Priority  *entity.TaskPriority
	SortBy    string
	SortOrder string
	Skip      int
	Limit     int
}

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a single task by its unique ID, regardless of owner.
	// Ownership is decided by the use case layer through the ownership guard.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// ListByOwner retrieves the tasks owned by the given user, filtered,
	// sorted and paginated per the filter.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]*entity.Task, error)

	// CountByOwner returns the total number of tasks owned by the given user.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Update persists the full state of an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
