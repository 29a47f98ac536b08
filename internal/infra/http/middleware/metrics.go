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

	engagementsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagements_recorded_total",
			Help: "Total number of engagements recorded",
		},
		[]string{"type"},
	)

	prospectsImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospects_imported_total",
			Help: "Total number of prospects imported",
		},
		[]string{"source"},
	)

	digestEmailsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "digest_emails_sent_total",
			Help: "Total number of due-queue digest emails sent",
		},
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

func RecordEngagement(engagementType string) {
	engagementsRecorded.WithLabelValues(engagementType).Inc()
}

func RecordImport(source string, count int) {
	prospectsImported.WithLabelValues(source).Add(float64(count))
}

func RecordDigestSent() {
	digestEmailsSent.Inc()
}
