package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ruralbank/internal/usecase/query"
)

type QueryHandler struct{ uc *query.Usecase }

func NewQueryHandler(uc *query.Usecase) *QueryHandler { return &QueryHandler{uc: uc} }

func (h *QueryHandler) AccountTransactions(c echo.Context) error {
	list, err := h.uc.TransactionsByAccount(c.Request().Context(), c.Param("account_id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *QueryHandler) AccountLoans(c echo.Context) error {
	list, err := h.uc.LoansByAccount(c.Request().Context(), c.Param("account_id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *QueryHandler) CustomerAccounts(c echo.Context) error {
	list, err := h.uc.AccountsByCustomer(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
