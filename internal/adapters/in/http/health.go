package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency of the service.
type HealthCheck func(ctx context.Context) error

// HealthHandler answers "Healthy" when every check passes. Otherwise it answers 503
// with the error of each failed dependency.
func HealthHandler(checks map[string]HealthCheck) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		failed := make(map[string]string)
		for name, check := range checks {
			if err := check(ctx); err != nil {
				failed[name] = err.Error()
			}
		}

		if len(failed) > 0 {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unavailable",
				"checks": failed,
			})
		}
		return c.String(http.StatusOK, "Healthy")
	}
}
