// Package metrics - Prometheus метрики колеса и HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry - коллекторы приложения
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lucky_wheel",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lucky_wheel",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lucky_wheel",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	spins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lucky_wheel",
			Subsystem: "game",
			Name:      "spins_total",
			Help:      "Committed spins by prize tier.",
		},
		[]string{"tier"},
	)

	prizesAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lucky_wheel",
			Subsystem: "game",
			Name:      "prizes_awarded_gwei_total",
			Help:      "Sum of payouts assigned by spins, in gwei.",
		},
	)

	claims = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lucky_wheel",
			Subsystem: "game",
			Name:      "claims_total",
			Help:      "Committed prize claims.",
		},
	)

	payoutsDisbursed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lucky_wheel",
			Subsystem: "game",
			Name:      "payouts_disbursed_gwei_total",
			Help:      "Sum of disbursed prizes, in gwei.",
		},
	)

	rejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lucky_wheel",
			Subsystem: "game",
			Name:      "rejections_total",
			Help:      "Rejected spin and claim requests by error code.",
		},
		[]string{"operation", "code"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		spins,
		prizesAwarded,
		claims,
		payoutsDisbursed,
		rejections,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler - HTTP обработчик /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordSpin(tier string, payout int64) {
	spins.WithLabelValues(tier).Inc()
	if payout > 0 {
		prizesAwarded.Add(float64(payout))
	}
}

func RecordClaim(amount int64) {
	claims.Inc()
	payoutsDisbursed.Add(float64(amount))
}

func RecordRejection(operation, code string) {
	rejections.WithLabelValues(operation, code).Inc()
}

// InstrumentHandler собирает метрики HTTP, маршрут берется из шаблона chi
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := routePattern(r)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// routePattern шаблон маршрута вместо пути, чтобы адреса не раздували кардинальность
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
