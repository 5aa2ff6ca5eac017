package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"ruralbank/internal/domain/identity"
)

const sessionContextKey = "session"

// NewSessionToken issues an HS256 token carrying the role-bearing session.
// Demo plumbing so the browser UI can hold a login across requests; this is
// not an authentication security layer.
func NewSessionToken(secret []byte, sess *identity.Session, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      sess.UserID,
		"username": sess.Username,
		"role":     string(sess.Role),
		"name":     sess.DisplayName,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseSessionToken(secret []byte, tokenStr string) (*identity.Session, error) {
	tkn, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tkn.Claims.(jwt.MapClaims)
	if !ok || !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)
	if sub == "" || role == "" {
		return nil, errors.New("invalid token claims")
	}
	return &identity.Session{UserID: sub, Username: username, Role: identity.Role(role), DisplayName: name}, nil
}

// Session verifies the Bearer token and stores the session on the echo
// context for handlers and downstream middleware.
func Session(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			sess, err := parseSessionToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid session token"})
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// RequireRole gates a route to the given roles. Runs after Session.
func RequireRole(roles ...identity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
			}
			for _, r := range roles {
				if sess.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "role not permitted"})
		}
	}
}

// CurrentSession returns the authenticated session, or nil outside the
// Session middleware.
func CurrentSession(c echo.Context) *identity.Session {
	sess, _ := c.Get(sessionContextKey).(*identity.Session)
	return sess
}
