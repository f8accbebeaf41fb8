package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loandomain "loanbook-backend/internal/domain/loan"
	paydomain "loanbook-backend/internal/domain/payment"
	loanuc "loanbook-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type listLoansReq struct {
	BorrowerID string `query:"borrower_id" validate:"omitempty,refid"`
	LenderID   string `query:"lender_id"   validate:"omitempty,refid"`
	Status     string `query:"status"      validate:"omitempty,loanstatus"`
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	var req listLoansReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	loans, err := h.uc.List(c.Request().Context(), loandomain.Filter{
		BorrowerID: req.BorrowerID,
		LenderID:   req.LenderID,
		Status:     loandomain.Status(req.Status),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	detail, err := h.uc.Detail(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

type listPaymentsReq struct {
	Status string `query:"status" validate:"omitempty,paystatus"`
}

func (h *LoanHandler) ListPayments(c echo.Context) error {
	var req listPaymentsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	ps, err := h.uc.ListPayments(c.Request().Context(), c.Param("loan_id"), paydomain.Status(req.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *LoanHandler) ListTransactions(c echo.Context) error {
	ts, err := h.uc.ListTransactions(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}
