package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "preflight",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "preflight",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "preflight",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Inspection metrics
	inspectionsEvaluated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "preflight",
			Subsystem: "inspection",
			Name:      "evaluated_total",
			Help:      "Total number of checklist evaluations by verdict",
		},
		[]string{"verdict"},
	)

	// Alert metrics
	alertsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "preflight",
			Subsystem: "alert",
			Name:      "generated_total",
			Help:      "Total number of alerts generated by the engine",
		},
		[]string{"type", "priority"},
	)

	alertGenerationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "preflight",
			Subsystem: "alert",
			Name:      "generation_failures_total",
			Help:      "Total number of alert persistence failures",
		},
	)

	pendingAlerts = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "preflight",
			Subsystem: "alert",
			Name:      "pending_count",
			Help:      "Number of pending alerts by priority",
		},
		[]string{"priority"},
	)
)

// RecordEvaluation records a checklist evaluation verdict
func RecordEvaluation(verdict string) {
	inspectionsEvaluated.WithLabelValues(verdict).Inc()
}

// RecordAlertGenerated records an engine-generated alert
func RecordAlertGenerated(alertType, priority string) {
	alertsGenerated.WithLabelValues(alertType, priority).Inc()
}

// RecordAlertGenerationFailure records a failed alert persistence attempt
func RecordAlertGenerationFailure() {
	alertGenerationFailures.Inc()
}

// SetPendingAlerts sets the pending alert gauge for a priority
func SetPendingAlerts(priority string, count float64) {
	pendingAlerts.WithLabelValues(priority).Set(count)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instruments HTTP handlers with request metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		// Use the chi route pattern so metrics don't explode on path params
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := strconv.Itoa(ww.status)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
