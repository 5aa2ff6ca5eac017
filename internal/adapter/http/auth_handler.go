package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	authmw "ruralbank/internal/adapter/middleware"
	"ruralbank/internal/domain/identity"
	identityuc "ruralbank/internal/usecase/identity"
)

type AuthHandler struct {
	uc         *identityuc.Usecase
	secret     []byte
	sessionTTL time.Duration
}

func NewAuthHandler(uc *identityuc.Usecase, secret []byte, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, secret: secret, sessionTTL: sessionTTL}
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Secret   string `json:"secret"   validate:"required"`
}

type loginResp struct {
	Token   string            `json:"token"`
	Session *identity.Session `json:"session"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	sess, err := h.uc.Authenticate(c.Request().Context(), req.Username, req.Secret)
	if err != nil {
		return engineError(c, err)
	}
	token, err := authmw.NewSessionToken(h.secret, sess, h.sessionTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to issue session token"})
	}
	return c.JSON(http.StatusOK, loginResp{Token: token, Session: sess})
}
