package impl

import (
	"context"
	"log/slog"

	"taskhive/internal/domain/entity"
	domainerrors "taskhive/internal/domain/errors"
	"taskhive/internal/domain/repository"
	"taskhive/internal/domain/service"
	"taskhive/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	guard     *service.OwnershipGuard
	logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(
	txManager repository.TransactionManager,
	guard *service.OwnershipGuard,
	logger *slog.Logger,
) usecase.TaskUsecase {
	return &taskService{
		txManager: txManager,
		guard:     guard,
		logger:    logger,
	}
}

// CreateTask creates a task owned by the caller. Status and priority fall
// back to their defaults when the input leaves them unset.
func (srv *taskService) CreateTask(ctx context.Context, callerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	status := entity.StatusTodo
	if input.Status != nil {
		status = *input.Status
	}
	priority := entity.PriorityMedium
	if input.Priority != nil {
		priority = *input.Priority
	}

	if err := validateTaskFields(status, priority); err != nil {
		return nil, err
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		UserID:      callerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.WithStack(repoFactory.TaskRepo().Create(ctx, task))
	})
	if err != nil {
		srv.logger.Error("Failed to create task", "userID", callerID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute task creation transaction")
	}
	srv.logger.Debug("Task created", "taskID", task.ID, "userID", callerID)

	return task, nil
}

// GetTask returns a single task if and only if the caller owns it. A task
// owned by someone else is reported exactly like a missing one.
func (srv *taskService) GetTask(ctx context.Context, callerID, taskID uuid.UUID) (*entity.Task, error) {
	var task *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.loadOwnedTask(ctx, repoFactory.TaskRepo(), callerID, taskID)
		if err != nil {
			return err
		}
		task = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load task")
	}

	return task, nil
}

// ListTasks returns one page of the caller's tasks. Only the caller's own
// rows are ever scanned, so no ownership check per row is needed.
func (srv *taskService) ListTasks(ctx context.Context, callerID uuid.UUID, input *usecase.ListTasksInput) (*usecase.ListTasksOutput, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status filter: " + input.Status.String())
	}
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown priority filter: " + input.Priority.String())
	}

	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}
	if limit > repository.MaxListLimit {
		limit = repository.MaxListLimit
	}

	filter := repository.TaskFilter{
		Status:    input.Status,
		Priority:  input.Priority,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Skip:      skip,
		Limit:     limit,
	}

	var output *usecase.ListTasksOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		tasks, err := taskRepo.ListByOwner(ctx, callerID, filter)
		if err != nil {
			return errors.WithStack(err)
		}

		total, err := taskRepo.CountByOwner(ctx, callerID)
		if err != nil {
			return errors.WithStack(err)
		}

		output = &usecase.ListTasksOutput{
			Tasks: tasks,
			Total: total,
			Skip:  filter.Skip,
			Limit: filter.Limit,
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to list tasks", "userID", callerID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute task listing transaction")
	}

	return output, nil
}

// UpdateTask merges the non-nil input fields into the caller's task. Fields
// left nil keep their stored values.
func (srv *taskService) UpdateTask(ctx context.Context, callerID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	var updated *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := srv.loadOwnedTask(ctx, taskRepo, callerID, taskID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.Status != nil {
			task.Status = *input.Status
		}
		if input.Priority != nil {
			task.Priority = *input.Priority
		}
		if input.DueDate != nil {
			task.DueDate = input.DueDate
		}

		if err := validateTaskFields(task.Status, task.Priority); err != nil {
			return err
		}

		if err := taskRepo.Update(ctx, task); err != nil {
			return errors.WithStack(err)
		}

		refreshed, err := taskRepo.FindByID(ctx, taskID)
		if err != nil {
			return errors.Wrap(err, "failed to reload task after update")
		}
		updated = refreshed

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to update task", "taskID", taskID, "userID", callerID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute task update transaction")
	}
	srv.logger.Debug("Task updated", "taskID", taskID, "userID", callerID)

	return updated, nil
}

// DeleteTask removes the caller's task permanently.
func (srv *taskService) DeleteTask(ctx context.Context, callerID, taskID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		if _, err := srv.loadOwnedTask(ctx, taskRepo, callerID, taskID); err != nil {
			return err
		}

		return errors.WithStack(taskRepo.Delete(ctx, taskID))
	})
	if err != nil {
		srv.logger.Warn("Failed to delete task", "taskID", taskID, "userID", callerID, "error", err.Error())

		return errors.Wrap(err, "failed to execute task deletion transaction")
	}
	srv.logger.Debug("Task deleted", "taskID", taskID, "userID", callerID)

	return nil
}

// loadOwnedTask fetches a task and authorizes the caller against its owner.
// Both a missing task and a foreign one come back as ErrTaskNotFound so the
// API cannot be used to probe for other tenants' task IDs.
func (srv *taskService) loadOwnedTask(ctx context.Context, taskRepo repository.TaskRepository, callerID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	if srv.guard.Authorize(callerID, task.UserID) != service.Allowed {
		srv.logger.Warn("Cross-tenant task access denied", "taskID", taskID, "callerID", callerID)

		return nil, domainerrors.ErrTaskNotFound
	}

	return task, nil
}

func validateTaskFields(status entity.TaskStatus, priority entity.TaskPriority) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown status: " + status.String())
	}
	if !priority.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown priority: " + priority.String())
	}

	return nil
}
