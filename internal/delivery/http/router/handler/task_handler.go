package handler

import (
	"log/slog"
	"net/http"
	"time"

	"taskhive/internal/delivery/http/middleware"
	"taskhive/internal/delivery/http/response"
	"taskhive/internal/domain/entity"
	"taskhive/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateTaskRequest is the wire shape of a task creation request.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"max=1000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest is the wire shape of a partial task update. Absent and
// null fields leave the stored values untouched.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

// ListTasksRequest is the wire shape of the task listing query string.
type ListTasksRequest struct {
	Status    *string `query:"status" validate:"omitempty,oneof=todo in_progress completed"`
	Priority  *string `query:"priority" validate:"omitempty,oneof=low medium high"`
	SortBy    string  `query:"sort_by" validate:"omitempty,oneof=created_at updated_at due_date priority status"`
	SortOrder string  `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	Skip      int     `query:"skip" validate:"omitempty,min=0"`
	Limit     int     `query:"limit" validate:"omitempty,min=1,max=100"`
}

// TaskResponse is the wire shape of a single task.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	UserID      uuid.UUID  `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskListResponse is the wire shape of one listing page.
type TaskListResponse struct {
	Tasks []*TaskResponse `json:"tasks"`
	Total int64           `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}

// NewTaskResponse maps a domain task onto its wire shape.
func NewTaskResponse(task *entity.Task) *TaskResponse {
	return &TaskResponse{
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

// Create handles the task creation request.
func (h *TaskHandler) Create(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.CreateTask(c.Request().Context(), callerID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      statusPtr(req.Status),
		Priority:    priorityPtr(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewTaskResponse(task), "Task created successfully")
}

// Get handles the single-task read request.
func (h *TaskHandler) Get(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task id")
	}

	task, err := h.uc.GetTask(c.Request().Context(), callerID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewTaskResponse(task), "")
}

// List handles the task listing request.
func (h *TaskHandler) List(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	var req ListTasksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing query")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListTasks(c.Request().Context(), callerID, &usecase.ListTasksInput{
		Status:    statusPtr(req.Status),
		Priority:  priorityPtr(req.Priority),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Skip:      req.Skip,
		Limit:     req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	tasks := make([]*TaskResponse, 0, len(output.Tasks))
	for _, task := range output.Tasks {
		tasks = append(tasks, NewTaskResponse(task))
	}

	return response.Success(c, http.StatusOK, &TaskListResponse{
		Tasks: tasks,
		Total: output.Total,
		Skip:  output.Skip,
		Limit: output.Limit,
	}, "")
}

// Update handles the partial task update request.
func (h *TaskHandler) Update(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task id")
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), callerID, taskID, &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      statusPtr(req.Status),
		Priority:    priorityPtr(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewTaskResponse(task), "Task updated successfully")
}

// Delete handles the task deletion request.
func (h *TaskHandler) Delete(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task id")
	}

	if err := h.uc.DeleteTask(c.Request().Context(), callerID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func statusPtr(raw *string) *entity.TaskStatus {
	if raw == nil {
		return nil
	}
	status := entity.TaskStatus(*raw)

	return &status
}

func priorityPtr(raw *string) *entity.TaskPriority {
	if raw == nil {
		return nil
	}
	priority := entity.TaskPriority(*raw)

	return &priority
}
