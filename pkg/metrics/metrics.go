package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors shared by the Strong Foundations services.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Course
	LessonViews         *prometheus.CounterVec
	LessonCompletions   prometheus.Counter
	CatalogLoadFailures *prometheus.CounterVec

	// Auth
	AuthAttempts *prometheus.CounterVec
	RateLimited  *prometheus.CounterVec
}

var (
	metricsOnce   sync.Once
	sharedMetrics *Metrics
)

// NewMetrics registers the collectors with the default registry once and
// returns the shared instance on every call.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "sf_http_requests_total",
					Help: "Total number of HTTP requests served by the gateway",
				},
				[]string{"method", "route", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "sf_http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
			LessonViews: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "sf_lesson_views_total",
					Help: "Reader views served, split by whether forward navigation was locked",
				},
				[]string{"locked"},
			),
			LessonCompletions: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "sf_lesson_completions_total",
					Help: "Lessons marked complete by signed-in learners",
				},
			),
			CatalogLoadFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "sf_catalog_load_failures_total",
					Help: "Failed catalog reads by source",
				},
				[]string{"source"},
			),
			AuthAttempts: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "sf_auth_attempts_total",
					Help: "Sign-in and sign-up attempts by outcome",
				},
				[]string{"action", "result"},
			),
			RateLimited: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "sf_rate_limited_total",
					Help: "Requests rejected by the rate limiter",
				},
				[]string{"route"},
			),
		}
	})
	return sharedMetrics
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordLessonView(locked bool) {
	m.LessonViews.WithLabelValues(strconv.FormatBool(locked)).Inc()
}

func (m *Metrics) RecordAuth(action string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.AuthAttempts.WithLabelValues(action, result).Inc()
}
