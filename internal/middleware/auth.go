// Package middleware provides the echo middlewares shared by all routes:
// session authentication, request logging, and request metrics.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/smartfin/smartfin/internal/auth"
)

const (
	// userIDKey is the echo context key for the authenticated user id.
	userIDKey = "user_id"
	// emailKey is the echo context key for the authenticated user's email.
	emailKey = "email"
)

// GetUserID extracts the authenticated user id from the request context.
// Returns empty string if the request was not authenticated.
func GetUserID(c echo.Context) string {
	userID, _ := c.Get(userIDKey).(string)
	return userID
}

// GetEmail extracts the authenticated user's email from the request context.
func GetEmail(c echo.Context) string {
	email, _ := c.Get(emailKey).(string)
	return email
}

// RequireAuth returns a middleware that validates Bearer session tokens and
// stores the user identity on the request context.
func RequireAuth(jwtManager *auth.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrMissingToken.Error())
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken.Error())
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken.Error())
			}

			c.Set(userIDKey, claims.UserID)
			c.Set(emailKey, claims.Email)
			return next(c)
		}
	}
}
