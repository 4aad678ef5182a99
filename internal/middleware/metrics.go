package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/handler"
	"github.com/CodeEntraHQ/codeentra-landing-page/prometheus"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records HTTP request metrics for each handled request
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		// Record metrics after the request is processed. Handlers return
		// errors instead of committing error JSON themselves, so on the
		// error path the response status is not written yet; derive it
		// from the error the central handler will shape.
		status := responseStatus(c, err)
		method := c.Request().Method
		path := c.Path()
		statusStr := strconv.Itoa(status)
		service := prometheus.ServiceName()

		prometheus.RequestCounter.WithLabelValues(service, method, path, statusStr).Inc()
		prometheus.RecordStatusCategory(status)

		duration := time.Since(start).Seconds()
		prometheus.RequestDurationHistogram.WithLabelValues(service, method, path, statusStr).Observe(duration)

		return err
	}
}

func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	switch e := err.(type) {
	case *handler.APIError:
		return e.Status
	case *echo.HTTPError:
		return e.Code
	default:
		return http.StatusInternalServerError
	}
}
