package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger returns a middleware that logs every request with method,
// path, status, authenticated user, and duration.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			duration := time.Since(start).Milliseconds()
			status := c.Response().Status
			attrs := []any{
				"method", c.Request().Method,
				"path", c.Path(),
				"status", status,
				"user_id", GetUserID(c),
				"duration_ms", duration,
			}
			switch {
			case status >= 500:
				slog.Error("request failed", attrs...)
			case status >= 400:
				slog.Warn("request rejected", attrs...)
			default:
				slog.Info("request ok", attrs...)
			}
			return err
		}
	}
}
