package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanbook-backend/internal/usecase/dashboard"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Borrower(c echo.Context) error {
	v, err := h.uc.Borrower(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *DashboardHandler) Lender(c echo.Context) error {
	v, err := h.uc.Lender(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *DashboardHandler) Analyst(c echo.Context) error {
	v, err := h.uc.Analyst(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *DashboardHandler) Admin(c echo.Context) error {
	v, err := h.uc.Admin(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}
