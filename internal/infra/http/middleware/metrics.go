package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	entitiesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_entities_created_total",
			Help: "Total number of entities created, by kind",
		},
		[]string{"kind"},
	)

	nestedAppends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_nested_appends_total",
			Help: "Total number of memo/follow-up appends, by kind",
		},
		[]string{"kind"},
	)

	assignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_assignments_total",
			Help: "Total number of lead/proposal assignments",
		},
		[]string{"kind"},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_login_attempts_total",
			Help: "Total number of login attempts, by outcome",
		},
		[]string{"outcome"},
	)

	reportsDownloaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_reports_downloaded_total",
			Help: "Total number of report downloads, by type",
		},
		[]string{"type"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordEntityCreated(kind string) {
	entitiesCreated.WithLabelValues(kind).Inc()
}

func RecordNestedAppend(kind string) {
	nestedAppends.WithLabelValues(kind).Inc()
}

func RecordAssignment(kind string) {
	assignmentsTotal.WithLabelValues(kind).Inc()
}

func RecordLogin(outcome string) {
	loginAttempts.WithLabelValues(outcome).Inc()
}

func RecordReportDownload(reportType string) {
	reportsDownloaded.WithLabelValues(reportType).Inc()
}
