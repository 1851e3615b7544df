package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	backendRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_backend_request_duration_seconds",
			Help:    "Latency of calls to the storefront REST backend.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)

	checkoutTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_transitions_total",
			Help: "Checkout step transitions, by target step and outcome.",
		},
		[]string{"step", "outcome"},
	)

	ordersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Orders successfully created through checkout.",
		},
	)

	stockShortfalls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_stock_shortfalls_total",
			Help: "Checkout attempts blocked by insufficient stock.",
		},
	)

	couponsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_coupons_total",
			Help: "Coupon validation attempts, by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func ObserveBackendCall(method, route, code string, elapsed time.Duration) {
	backendRequestsDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}

func CheckoutTransition(step, outcome string) {
	checkoutTransitions.WithLabelValues(step, outcome).Inc()
}

func OrderPlaced() {
	ordersPlaced.Inc()
}

func StockShortfall() {
	stockShortfalls.Inc()
}

func CouponOutcome(outcome string) {
	couponsApplied.WithLabelValues(outcome).Inc()
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and latency, labelled by the mux pattern the request matches.
func Middleware(mux *http.ServeMux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			start := time.Now()
			httpRequestsInFlight.Inc()

			rw := newResponseWriter(w)

			_, pathPattern := mux.Handler(r)
			if pathPattern == "" {
				pathPattern = "unmatched"
			}

			defer func() {
				httpRequestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, pathPattern).Inc()
				httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(time.Since(start).Seconds())
				httpRequestsInFlight.Dec()
			}()

			next.ServeHTTP(rw, r)

		})
	}
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
