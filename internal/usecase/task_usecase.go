package usecase

import (
	"context"
	"time"

	"taskhive/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateTaskInput defines the data required to create a task. Status and
// Priority fall back to their defaults (todo, medium) when nil.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      *entity.TaskStatus
	Priority    *entity.TaskPriority
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update. A nil field leaves the stored
// value untouched; only non-nil fields are merged into the task.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
	Priority    *entity.TaskPriority
	DueDate     *time.Time
}

// ListTasksInput narrows, orders and paginates a task listing.
type ListTasksInput struct {
	Status    *entity.TaskStatus
	Priority  *entity.TaskPriority
	SortBy    string
	SortOrder string
	Skip      int
	Limit     int
}

// --- Output DTOs ---

// ListTasksOutput returns one page of tasks plus the owner's total count.
type ListTasksOutput struct {
	Tasks []*entity.Task
	Total int64
	Skip  int
	Limit int
}

// TaskUsecase defines the interface for task-related business operations.
// Every operation authorizes the caller against the task owner; a task that
// exists but belongs to someone else is reported as not found.
type TaskUsecase interface {
	CreateTask(ctx context.Context, callerID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	GetTask(ctx context.Context, callerID, taskID uuid.UUID) (*entity.Task, error)
	ListTasks(ctx context.Context, callerID uuid.UUID, input *ListTasksInput) (*ListTasksOutput, error)
	UpdateTask(ctx context.Context, callerID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, callerID, taskID uuid.UUID) error
}
