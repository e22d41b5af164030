package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"flipdar-api/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into a SYSTEM_001 response instead of
// tearing down the connection. The stack trace goes to the log, never to the
// client.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					slog.Error("panic recovered",
						"trace_id", traceID,
						"panic", r,
						"stack_trace", string(debug.Stack()),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)

					resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
					if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
						slog.Error("failed to send panic recovery response",
							"trace_id", traceID,
							"error", err,
						)
					}
				}
			}()

			return next(c)
		}
	}
}
