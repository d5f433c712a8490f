package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appmiddleware "taskhive/internal/delivery/http/middleware"
	"taskhive/internal/delivery/http/validator"
	"taskhive/internal/domain/entity"
	domainerrors "taskhive/internal/domain/errors"
	mocksUsecase "taskhive/internal/mocks/usecase"
	"taskhive/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newAuthenticatedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, callerID uuid.UUID) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(appmiddleware.ContextKeyUserID, callerID)

	return c
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTaskHandler_Create(t *testing.T) {
	callerID := uuid.New()
	taskID := uuid.New()

	mockUC := mocksUsecase.NewMockTaskUsecase(t)
	mockUC.EXPECT().CreateTask(mock.Anything, callerID, mock.AnythingOfType("*usecase.CreateTaskInput")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
			assert.Equal(t, "Write report", input.Title)
			assert.Nil(t, input.Status)

			return &entity.Task{
				ID:       taskID,
				Title:    input.Title,
				Status:   entity.StatusTodo,
				Priority: entity.PriorityMedium,
				UserID:   callerID,
			}, nil
		})

	handler := NewTaskHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"Write report"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, callerID)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), taskID.String())
	assert.Contains(t, rec.Body.String(), `"status":"todo"`)
	assert.Contains(t, rec.Body.String(), `"priority":"medium"`)
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	mockUC := mocksUsecase.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"description":"no title"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, uuid.New())

	err := handler.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestTaskHandler_Get_InvalidID(t *testing.T) {
	mockUC := mocksUsecase.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/tasks/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestTaskHandler_Get_NotFound(t *testing.T) {
	callerID := uuid.New()
	taskID := uuid.New()

	mockUC := mocksUsecase.NewMockTaskUsecase(t)
	mockUC.EXPECT().GetTask(mock.Anything, callerID, taskID).Return(nil, domainerrors.ErrTaskNotFound)

	handler := NewTaskHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/tasks/"+taskID.String(), nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, callerID)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	err := handler.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskHandler_List(t *testing.T) {
	callerID := uuid.New()
	dueDate := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	mockUC := mocksUsecase.NewMockTaskUsecase(t)
	mockUC.EXPECT().ListTasks(mock.Anything, callerID, mock.AnythingOfType("*usecase.ListTasksInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.ListTasksInput) {
			require.NotNil(t, input.Status)
			assert.Equal(t, entity.StatusTodo, *input.Status)
			assert.Equal(t, "due_date", input.SortBy)
			assert.Equal(t, "asc", input.SortOrder)
			assert.Equal(t, 10, input.Skip)
			assert.Equal(t, 5, input.Limit)
		}).
		Return(&usecase.ListTasksOutput{
			Tasks: []*entity.Task{{
				ID:       uuid.New(),
				Title:    "Ship release",
				Status:   entity.StatusTodo,
				Priority: entity.PriorityHigh,
				DueDate:  &dueDate,
				UserID:   callerID,
			}},
			Total: 42,
			Skip:  10,
			Limit: 5,
		}, nil)

	handler := NewTaskHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/tasks?status=todo&sort_by=due_date&sort_order=asc&skip=10&limit=5", nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, callerID)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data TaskListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, int64(42), envelope.Data.Total)
	assert.Equal(t, 10, envelope.Data.Skip)
	assert.Equal(t, 5, envelope.Data.Limit)
	require.Len(t, envelope.Data.Tasks, 1)
	assert.Equal(t, "Ship release", envelope.Data.Tasks[0].Title)
}

func TestTaskHandler_List_RejectsUnknownSortField(t *testing.T) {
	mockUC := mocksUsecase.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/tasks?sort_by=password_hash", nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, uuid.New())

	err := handler.List(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestTaskHandler_Update_PartialBody(t *testing.T) {
	callerID := uuid.New()
	taskID := uuid.New()

	mockUC := mocksUsecase.NewMockTaskUsecase(t)
	mockUC.EXPECT().UpdateTask(mock.Anything, callerID, taskID, mock.AnythingOfType("*usecase.UpdateTaskInput")).
		Run(func(_ context.Context, _ uuid.UUID, _ uuid.UUID, input *usecase.UpdateTaskInput) {
			require.NotNil(t, input.Status)
			assert.Equal(t, entity.StatusCompleted, *input.Status)
			assert.Nil(t, input.Title)
			assert.Nil(t, input.Description)
			assert.Nil(t, input.Priority)
		}).
		Return(&entity.Task{
			ID:       taskID,
			Title:    "Ship release",
			Status:   entity.StatusCompleted,
			Priority: entity.PriorityHigh,
			UserID:   callerID,
		}, nil)

	handler := NewTaskHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPatch, "/tasks/"+taskID.String(), strings.NewReader(`{"status":"completed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, callerID)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestTaskHandler_Delete(t *testing.T) {
	callerID := uuid.New()
	taskID := uuid.New()

	mockUC := mocksUsecase.NewMockTaskUsecase(t)
	mockUC.EXPECT().DeleteTask(mock.Anything, callerID, taskID).Return(nil)

	handler := NewTaskHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/tasks/"+taskID.String(), nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, callerID)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
