package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	// StatusTodo is the default state of a newly created task.
	StatusTodo TaskStatus = "todo"
	// StatusInProgress indicates work on the task has started.
	StatusInProgress TaskStatus = "in_progress"
	// StatusCompleted indicates the task is done.
	StatusCompleted TaskStatus = "completed"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the TaskStatus is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	// PriorityLow is the least urgent priority.
	PriorityLow TaskPriority = "low"
	// PriorityMedium is the default priority of a newly created task.
	PriorityMedium TaskPriority = "medium"
	// PriorityHigh is the most urgent priority.
	PriorityHigh TaskPriority = "high"
)

// String returns the string representation of the TaskPriority.
func (p TaskPriority) String() string {
	return string(p)
}

// IsValid checks if the TaskPriority is a valid value.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank returns the semantic ordering of the priority (low < medium < high),
// used when sorting task lists by priority.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

// Task is a single unit of work owned by exactly one user. Every read,
// update and delete is scoped by the owning user's identifier.
type Task struct {
	ID          uuid.UUID    // The unique identifier for the task.
	Title       string       // Required, 1-255 characters.
	Description string       // Optional, up to 1000 characters.
	Status      TaskStatus   // todo, in_progress or completed.
	Priority    TaskPriority // low, medium or high.
	DueDate     *time.Time   // Optional deadline; nil when the task has none.
	UserID      uuid.UUID    // The owning user. Must reference an existing user.
	CreatedAt   time.Time    // Timestamp of when this task was created.
	UpdatedAt   time.Time    // Timestamp of the last modification to this task.
}
