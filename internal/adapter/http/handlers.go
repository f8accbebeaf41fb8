package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	loandomain "loanbook-backend/internal/domain/loan"
	userdomain "loanbook-backend/internal/domain/user"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// writeError maps domain errors to HTTP responses. Absence of a record is
// an expected outcome, not a server fault.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loandomain.ErrNotFound), errors.Is(err, userdomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
