package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/handler"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/middleware"
	"github.com/CodeEntraHQ/codeentra-landing-page/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func serveWithMetrics(t *testing.T, path string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(middleware.MetricsMiddleware)
	e.GET(path, h)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func requestCount(path, status string) float64 {
	return testutil.ToFloat64(prometheus.RequestCounter.WithLabelValues(
		prometheus.ServiceName(), http.MethodGet, path, status))
}

func TestMetricsMiddlewareRecordsSuccessStatus(t *testing.T) {
	const path = "/metrics-test/ok"

	rec := serveWithMetrics(t, path, func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, requestCount(path, "200"))
}

func TestMetricsMiddlewareRecordsErrorStatus(t *testing.T) {
	const path = "/metrics-test/missing"

	// The error response is written by the central error handler after the
	// middleware observes the request; the recorded status must still be
	// the error's, not the zero-value 200.
	rec := serveWithMetrics(t, path, func(c echo.Context) error {
		return handler.ErrNotFound("Row not found")
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1.0, requestCount(path, "404"))
	assert.Equal(t, 0.0, requestCount(path, "200"))
}

func TestMetricsMiddlewareRecordsEchoErrorStatus(t *testing.T) {
	const path = "/metrics-test/denied"

	rec := serveWithMetrics(t, path, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1.0, requestCount(path, "401"))
}

func TestMetricsMiddlewareRecordsUnknownErrorAs500(t *testing.T) {
	const path = "/metrics-test/broken"

	rec := serveWithMetrics(t, path, func(c echo.Context) error {
		return assert.AnError
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1.0, requestCount(path, "500"))
}
