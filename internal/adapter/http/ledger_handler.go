package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "ruralbank/internal/adapter/middleware"
	ledgeruc "ruralbank/internal/usecase/ledger"
)

type LedgerHandler struct{ uc *ledgeruc.Usecase }

func NewLedgerHandler(uc *ledgeruc.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type moveMoneyReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *LedgerHandler) Deposit(c echo.Context) error {
	var req moveMoneyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	sess := authmw.CurrentSession(c)
	t, err := h.uc.Deposit(c.Request().Context(), c.Param("account_id"), req.Amount, sess.UserID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *LedgerHandler) Withdraw(c echo.Context) error {
	var req moveMoneyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	sess := authmw.CurrentSession(c)
	t, err := h.uc.Withdraw(c.Request().Context(), c.Param("account_id"), req.Amount, sess.UserID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

type transferReq struct {
	FromAccountID string  `json:"from_account_id" validate:"required"`
	ToAccountID   string  `json:"to_account_id"   validate:"required"`
	Amount        float64 `json:"amount"          validate:"required,gt=0,dec2"`
}

type transferResp struct {
	OutLeg any `json:"out_leg"`
	InLeg  any `json:"in_leg"`
}

func (h *LedgerHandler) Transfer(c echo.Context) error {
	var req transferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	sess := authmw.CurrentSession(c)
	outLeg, inLeg, err := h.uc.Transfer(c.Request().Context(), req.FromAccountID, req.ToAccountID, req.Amount, sess.UserID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, transferResp{OutLeg: outLeg, InLeg: inLeg})
}
