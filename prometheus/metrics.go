package prometheus

import (
	"net/http"

	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// StatusCodeCategoryCounter counts responses by status category
	StatusCodeCategoryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"service", "category"},
	)

	// SeederRunCounter counts seeder executions by entity type and outcome
	SeederRunCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seeder_runs_total",
			Help: "Total number of seeder executions by outcome",
		},
		[]string{"seeder", "outcome"}, // outcome is "seeded", "skipped" or "failed"
	)

	// AuthErrorCounter counts admin authentication failures
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_auth_errors_total",
			Help: "Total number of admin authentication errors",
		},
		[]string{"type"}, // type can be "invalid_credentials", "missing_token", "invalid_token"
	)

	// LeadCounter counts lead-capture submissions
	LeadCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_submissions_total",
			Help: "Total number of lead-capture submissions",
		},
		[]string{"kind"}, // kind is "contact" or "internship"
	)
)

var serviceName = "codeentra-backend"

// InitMetrics registers all metric vectors and records the service label.
func InitMetrics(cfg *config.Config) {
	serviceName = cfg.Metrics.Prefix
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDurationHistogram)
	prometheus.MustRegister(StatusCodeCategoryCounter)
	prometheus.MustRegister(SeederRunCounter)
	prometheus.MustRegister(AuthErrorCounter)
	prometheus.MustRegister(LeadCounter)
}

// ServiceName returns the service label applied to HTTP metrics.
func ServiceName() string {
	return serviceName
}

// RecordStatusCategory increments the status category counter for a response.
func RecordStatusCategory(status int) {
	category := ""
	if status >= 200 && status < 300 {
		category = "2xx"
	} else if status >= 400 && status < 500 {
		category = "4xx"
	} else if status >= 500 && status < 600 {
		category = "5xx"
	}
	if category != "" {
		StatusCodeCategoryCounter.WithLabelValues(serviceName, category).Inc()
	}
}

// RecordSeederRun increments the seeder outcome counter.
func RecordSeederRun(seeder, outcome string) {
	SeederRunCounter.WithLabelValues(seeder, outcome).Inc()
}

// RecordAuthError increments the auth error counter.
func RecordAuthError(errType string) {
	AuthErrorCounter.WithLabelValues(errType).Inc()
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
