package model

import (
	"time"

	"github.com/google/uuid"

	"taskhive/internal/domain/entity"
)

// TaskModel mirrors the 'tasks' table. Every task belongs to exactly one
// owner through UserID, which carries a foreign key to users.id.
type TaskModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:varchar(1000)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'todo';index"`
	Priority    string    `gorm:"type:varchar(20);not null;default:'medium';index"`
	DueDate     *time.Time
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}

// ToEntity converts the persistence model into its domain counterpart.
func (m *TaskModel) ToEntity() *entity.Task {
	return &entity.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.TaskStatus(m.Status),
		Priority:    entity.TaskPriority(m.Priority),
		DueDate:     m.DueDate,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TaskModelFromEntity converts a domain task into its persistence model.
func TaskModelFromEntity(task *entity.Task) *TaskModel {
	return &TaskModel{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status.String(),
		Priority:    task.Priority.String(),
		DueDate:     task.DueDate,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
