package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

func TestAuthHandler_Register(t *testing.T) {
	userID := uuid.New()

	mockUC := mocksUsecase.NewMockAuthUsecase(t)
	mockUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Str0ng#Pass",
	}).Return(&usecase.RegisterOutput{
		User: &entity.User{
			ID:       userID,
			Username: "alice",
			Email:    "alice@example.com",
			Role:     entity.RoleUser,
			IsActive: true,
		},
	}, nil)

	handler := NewAuthHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	body := `{"username":"alice","email":"alice@example.com","password":"Str0ng#Pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestAuthHandler_Register_SingleCharacterUsername(t *testing.T) {
	userID := uuid.New()

	mockUC := mocksUsecase.NewMockAuthUsecase(t)
	mockUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Username: "a",
		Email:    "a@example.com",
		Password: "Str0ng#Pass",
	}).Return(&usecase.RegisterOutput{
		User: &entity.User{
			ID:       userID,
			Username: "a",
			Email:    "a@example.com",
			Role:     entity.RoleUser,
			IsActive: true,
		},
	}, nil)

	handler := NewAuthHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	body := `{"username":"a","email":"a@example.com","password":"Str0ng#Pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	mockUC := mocksUsecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	body := `{"username":"alice","email":"not-an-email","password":"Str0ng#Pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	userID := uuid.New()

	mockUC := mocksUsecase.NewMockAuthUsecase(t)
	mockUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Str0ng#Pass",
	}).Return(&usecase.LoginOutput{
		AccessToken: "signed.jwt.token",
		ExpiresIn:   1800,
		User: &entity.User{
			ID:       userID,
			Username: "alice",
			Email:    "alice@example.com",
			Role:     entity.RoleUser,
			IsActive: true,
		},
	}, nil)

	handler := NewAuthHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	body := `{"email":"alice@example.com","password":"Str0ng#Pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "signed.jwt.token", envelope.Data.AccessToken)
	assert.Equal(t, "Bearer", envelope.Data.TokenType)
	assert.Equal(t, int64(1800), envelope.Data.ExpiresIn)
	require.NotNil(t, envelope.Data.User)
	assert.Equal(t, "alice", envelope.Data.User.Username)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	mockUC := mocksUsecase.NewMockAuthUsecase(t)
	mockUC.EXPECT().Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	handler := NewAuthHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	body := `{"email":"alice@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Me(t *testing.T) {
	userID := uuid.New()

	mockUC := mocksUsecase.NewMockAuthUsecase(t)
	mockUC.EXPECT().Profile(mock.Anything, userID).Return(&entity.User{
		ID:       userID,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleUser,
		IsActive: true,
	}, nil)

	handler := NewAuthHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := newAuthenticatedContext(e, req, rec, userID)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	mockUC := mocksUsecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
