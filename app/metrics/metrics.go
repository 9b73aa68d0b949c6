package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "secours"

var (
	// Registry holds the service's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	grpcRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Total number of unary gRPC calls handled.",
		},
		[]string{"method", "code"},
	)

	tokenPurchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tokens",
			Name:      "purchases_total",
			Help:      "Completed token purchases.",
		},
		[]string{"category", "payment_method"},
	)

	tokensPurchased = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tokens",
			Name:      "purchased_total",
			Help:      "Tokens credited by purchases.",
		},
		[]string{"category"},
	)

	rescueRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rescue",
			Name:      "requests_total",
			Help:      "Rescue request submissions by outcome.",
		},
		[]string{"result"},
	)

	adjudications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rescue",
			Name:      "adjudications_total",
			Help:      "Rescue adjudications by action and outcome.",
		},
		[]string{"action", "result"},
	)

	balanceDrift = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "balance_drift_subscriptions",
			Help:      "Subscriptions whose stored balance disagrees with the ledger at the last reconciliation.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		grpcRequests,
		tokenPurchases,
		tokensPurchased,
		rescueRequests,
		adjudications,
		balanceDrift,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// EchoMiddleware records request counts and durations keyed by route pattern.
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if ctx.Path() == "/metrics" {
				return next(ctx)
			}

			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			method := strings.ToUpper(ctx.Request().Method)
			httpRequests.WithLabelValues(method, path, strconv.Itoa(ctx.Response().Status)).Inc()
			httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

func RecordGRPCRequest(method, code string) {
	grpcRequests.WithLabelValues(method, code).Inc()
}

func RecordPurchase(category, paymentMethod string, tokens int64) {
	tokenPurchases.WithLabelValues(category, paymentMethod).Inc()
	tokensPurchased.WithLabelValues(category).Add(float64(tokens))
}

func RecordRescueRequest(result string) {
	rescueRequests.WithLabelValues(result).Inc()
}

func RecordAdjudication(action, result string) {
	adjudications.WithLabelValues(action, result).Inc()
}

func SetBalanceDrift(count int) {
	balanceDrift.Set(float64(count))
}
