package middleware

import (
	"context"

	"recommendation-service/business/recommendation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware assigns every request a trace id, honoring one supplied by
// the caller, and exposes it in the response headers.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get("X-Trace-ID")
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommendation.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-ID", traceID)

			return next(c)
		}
	}
}
