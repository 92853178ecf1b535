package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

type Handler struct {
	m    *blog.Manager
	log  *slog.Logger
	auth AuthConfig
}

func NewHandler(m *blog.Manager, logger *slog.Logger, auth AuthConfig) *Handler {
	return &Handler{
		m:    m,
		log:  logger,
		auth: auth,
	}
}

// handleError maps a domain error onto a status code and the envelope.
// Upstream store failures are logged and hidden behind a generic message;
// the store's error text is never user-facing.
func (h *Handler) handleError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, blog.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, blog.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, blog.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, blog.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, blog.ErrConflict):
		status = http.StatusConflict
	default:
		message = "internal error"
	}

	h.log.Error("handleError", "error", err, "statusCode", status,
		"path", c.Path(), "message", message)

	return c.JSON(status, Response{Success: false, Error: message})
}

func (h *Handler) badRequest(c echo.Context, err error, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", http.StatusBadRequest, "message", message)
	return c.JSON(http.StatusBadRequest, Response{Success: false, Error: message})
}
