package metrics

import (
	"double-optin-service/internal/app/models"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	outcomes        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the service collectors together with the standard process and go collectors.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "double_optin",
			Name:      "confirmation_outcomes_total",
			Help:      "Number of confirmation links handled, by outcome.",
		}, []string{"outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "http",
			Name:      "request_duration_seconds",
			Help:      "A histogram of duration, in seconds, handling HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"method", "path", "status"}),
	}
	registry.MustRegister(m.outcomes, m.requestDuration)
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())
	return m
}

func (m *Metrics) RecordOutcome(outcome models.Outcome) {
	m.outcomes.WithLabelValues(string(outcome)).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Middleware observes request_duration_seconds labelled with the matched chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		// unmatched requests share one series
		path := ""
		if routeContext := chi.RouteContext(r.Context()); routeContext != nil {
			path = routeContext.RoutePattern()
		}
		m.requestDuration.With(prometheus.Labels{
			"method": r.Method,
			"path":   path,
			"status": strconv.Itoa(rec.status),
		}).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		m.registry,
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}),
	)
}
