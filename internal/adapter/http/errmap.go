package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
	"ruralbank/internal/domain/uow"
)

// statusFor maps engine error kinds to HTTP statuses. Engine errors are
// surfaced verbatim in the payload; the engine never retries on its own.
func statusFor(err error) int {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, account.ErrNotFound), errors.Is(err, loan.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, account.ErrValidation),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, loan.ErrInvalidAmount),
		errors.Is(err, ledger.ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, account.ErrInvalidTransition),
		errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, account.ErrNotActive),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, identity.ErrDuplicateUsername),
		errors.Is(err, uow.ErrDuplicateID):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func engineError(c echo.Context, err error) error {
	return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
}
