package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "ruralbank/internal/adapter/middleware"
	"ruralbank/internal/domain/account"
	"ruralbank/internal/usecase/registry"
)

type AccountHandler struct{ uc *registry.Usecase }

func NewAccountHandler(uc *registry.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

type createAccountReq struct {
	CustomerName string `json:"customer_name" validate:"required"`
	DateOfBirth  string `json:"date_of_birth" validate:"required"`
	Address      string `json:"address"       validate:"required"`
	IDType       string `json:"id_type"       validate:"required"`
	IDNumber     string `json:"id_number"     validate:"required"`
}

func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	acc, err := h.uc.CreateAccount(c.Request().Context(), registry.CreateAccountInput(req))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, acc)
}

func (h *AccountHandler) ApproveAccount(c echo.Context) error {
	sess := authmw.CurrentSession(c)
	acc, err := h.uc.Approve(c.Request().Context(), c.Param("account_id"), sess.UserID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, acc)
}

type rejectReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *AccountHandler) RejectAccount(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	// engine re-validates the reason; no validator pass needed for one field
	sess := authmw.CurrentSession(c)
	acc, err := h.uc.Reject(c.Request().Context(), c.Param("account_id"), sess.UserID, req.Reason)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, acc)
}

func (h *AccountHandler) GetAccount(c echo.Context) error {
	acc, err := h.uc.Find(c.Request().Context(), c.Param("account_id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, acc)
}

func (h *AccountHandler) ListAccounts(c echo.Context) error {
	status := account.Status(c.QueryParam("status"))
	list, err := h.uc.List(c.Request().Context(), status)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
