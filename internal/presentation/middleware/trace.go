package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"songart/internal/presentation"
)

// TraceID tags every request with a fresh UUID, exposed both to handlers
// via the context and to clients via the X-Trace-Id header.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := uuid.NewString()
			c.Set(presentation.KeyTraceID, id)
			c.Response().Header().Set("X-Trace-Id", id)

			return next(c)
		}
	}
}
