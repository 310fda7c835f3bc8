package middleware

import (
	"strconv"
	"time"

	"github.com/Ibrahim-Omar1/DNNDON/internal/metrics"
	"github.com/labstack/echo/v4"
)

// Metrics records request counts and durations per route.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			path := c.Path()
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			metrics.RequestCount.WithLabelValues(path, method, status).Inc()
			metrics.RequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
