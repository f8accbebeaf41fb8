package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanbook-backend/internal/usecase/portfolio"
)

type PortfolioHandler struct{ svc *portfolio.Service }

func NewPortfolioHandler(svc *portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

func (h *PortfolioHandler) Summary(c echo.Context) error {
	s, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *PortfolioHandler) CashFlow(c echo.Context) error {
	points, err := h.svc.CashFlow(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, points)
}

func (h *PortfolioHandler) RiskDistribution(c echo.Context) error {
	buckets, err := h.svc.RiskDistribution(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, buckets)
}

func (h *PortfolioHandler) StatusDistribution(c echo.Context) error {
	buckets, err := h.svc.StatusDistribution(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, buckets)
}

func (h *PortfolioHandler) RateBuckets(c echo.Context) error {
	buckets, err := h.svc.RateBuckets(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, buckets)
}
