package handler

import (
	"log/slog"
	"net/http"

	"taskhive/internal/delivery/http/middleware"
	"taskhive/internal/delivery/http/response"
	"taskhive/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administrative handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers returns every registered account, including credential hashes.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	adminID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	users, err := h.uc.ListUsers(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*AdminUserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, NewAdminUserResponse(user))
	}

	return response.Success(c, http.StatusOK, resp, "")
}

// GetUser returns a single account by its identifier.
func (h *AdminHandler) GetUser(c echo.Context) error {
	adminID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.GetUser(c.Request().Context(), adminID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewAdminUserResponse(user), "")
}
