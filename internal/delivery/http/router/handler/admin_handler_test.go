package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskhive/internal/domain/entity"
	mocksUsecase "taskhive/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_ListUsers(t *testing.T) {
	adminID := uuid.New()

	mockUC := mocksUsecase.NewMockAdminUsecase(t)
	mockUC.EXPECT().ListUsers(mock.Anything, adminID).Return([]*entity.User{
		{
			ID:           uuid.New(),
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			Role:         entity.RoleUser,
			IsActive:     true,
		},
		{
			ID:           adminID,
			Username:     "root",
			Email:        "root@example.com",
			PasswordHash: "$2a$10$vutsrqponmlkjihgfedcba",
			Role:         entity.RoleAdmin,
			IsActive:     true,
		},
	}, nil)

	handler := NewAdminHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, adminID)

	require.NoError(t, handler.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// The administrative projection exposes the stored credential hash.
	assert.Contains(t, rec.Body.String(), `"password_hash":"$2a$10$abcdefghijklmnopqrstuv"`)
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)
}

func TestAdminHandler_GetUser(t *testing.T) {
	adminID := uuid.New()
	userID := uuid.New()

	mockUC := mocksUsecase.NewMockAdminUsecase(t)
	mockUC.EXPECT().GetUser(mock.Anything, adminID, userID).Return(&entity.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         entity.RoleUser,
		IsActive:     true,
	}, nil)

	handler := NewAdminHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/admin/users/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, adminID)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	require.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "password_hash")
}

func TestAdminHandler_GetUser_InvalidID(t *testing.T) {
	mockUC := mocksUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/admin/users/42", nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
