package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "ruralbank/internal/adapter/middleware"
	"ruralbank/internal/domain/loan"
	"ruralbank/internal/usecase/loanengine"
)

type LoanHandler struct{ uc *loanengine.Usecase }

func NewLoanHandler(uc *loanengine.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type previewTermsReq struct {
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0"`
	TermYears    int     `json:"term_years"    validate:"required,gt=0"`
}

// PreviewTerms lets the application form show the schedule before anything
// is committed. Pure computation, no state change.
func (h *LoanHandler) PreviewTerms(c echo.Context) error {
	var req previewTermsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	terms, err := h.uc.PreviewTerms(req.Amount, req.InterestRate, req.TermYears)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, terms)
}

type applyLoanReq struct {
	AccountID    string  `json:"account_id"    validate:"required"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0"`
	TermYears    int     `json:"term_years"    validate:"required,gt=0"`
}

func (h *LoanHandler) ApplyLoan(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.Apply(c.Request().Context(), loanengine.ApplyInput(req))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	sess := authmw.CurrentSession(c)
	l, err := h.uc.Approve(c.Request().Context(), c.Param("loan_id"), sess.UserID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	sess := authmw.CurrentSession(c)
	l, err := h.uc.Reject(c.Request().Context(), c.Param("loan_id"), sess.UserID, req.Reason)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	l, err := h.uc.Find(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	status := loan.Status(c.QueryParam("status"))
	list, err := h.uc.List(c.Request().Context(), status)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
