package postgres

import (
	"context"
	"fmt"

	"taskhive/internal/domain/entity"
	domainerrors "taskhive/internal/domain/errors"
	"taskhive/internal/domain/repository"
	"taskhive/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// priorityRankExpr orders priorities by semantic weight instead of the
// lexicographic order of their labels.
const priorityRankExpr = "CASE priority WHEN 'low' THEN 0 WHEN 'medium' THEN 1 WHEN 'high' THEN 2 END"

// statusRankExpr orders statuses by workflow progression.
const statusRankExpr = "CASE status WHEN 'todo' THEN 0 WHEN 'in_progress' THEN 1 WHEN 'completed' THEN 2 END"

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create persists a new task for a user.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := model.TaskModelFromEntity(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTaskWriteFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTaskWriteFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	// Update the entity with generated values
	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindByID retrieves a task by its unique ID regardless of owner.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by ID")
	}

	return taskM.ToEntity(), nil
}

// ListByOwner retrieves the tasks owned by a user, narrowed and ordered by
// the filter. Ties on the sort key fall back to id ascending so pagination
// stays stable across requests.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.TaskFilter) ([]*entity.Task, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("user_id = ?", ownerID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}

	orderClause, err := buildOrderClause(filter.SortBy, filter.SortOrder)
	if err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}
	if limit > repository.MaxListLimit {
		limit = repository.MaxListLimit
	}
	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}

	var taskModels []*model.TaskModel
	if err := query.
		Order(orderClause).
		Offset(skip).
		Limit(limit).
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by owner")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, taskM.ToEntity())
	}

	return tasks, nil
}

// CountByOwner returns the total number of tasks owned by a user.
func (repo *taskRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count tasks by owner")
	}

	return count, nil
}

// Update persists the full state of an existing task. DueDate is written
// unconditionally so clearing it back to NULL round-trips.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := model.TaskModelFromEntity(task)

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", taskM.ID).
		Updates(map[string]any{
			"title":       taskM.Title,
			"description": taskM.Description,
			"status":      taskM.Status,
			"priority":    taskM.Priority,
			"due_date":    taskM.DueDate,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task permanently.
func (repo *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// buildOrderClause maps a requested sort field and direction onto a safe SQL
// ORDER BY expression. Only whitelisted columns are ever interpolated.
func buildOrderClause(sortBy, sortOrder string) (string, error) {
	direction := "DESC"
	switch sortOrder {
	case "", repository.SortDesc:
	case repository.SortAsc:
		direction = "ASC"
	default:
		return "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported sort order: %s", sortOrder))
	}

	var column string
	switch sortBy {
	case "", repository.SortByCreatedAt:
		column = "created_at"
	case repository.SortByUpdatedAt:
		column = "updated_at"
	case repository.SortByDueDate:
		// NULL due dates sort last regardless of direction.
		return fmt.Sprintf("due_date %s NULLS LAST, id ASC", direction), nil
	case repository.SortByPriority:
		column = priorityRankExpr
	case repository.SortByStatus:
		column = statusRankExpr
	default:
		return "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported sort field: %s", sortBy))
	}

	return fmt.Sprintf("%s %s, id ASC", column, direction), nil
}
