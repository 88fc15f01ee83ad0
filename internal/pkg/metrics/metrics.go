// Package metrics exposes Prometheus instrumentation for the order service:
// HTTP request counters and latency histograms for the inbound adapter, and a
// state gauge for the user-service circuit breakers.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics tracks inbound HTTP traffic.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

// NewServerMetrics registers and returns HTTP server metrics for the given service name.
func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderservice",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orderservice",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	prometheus.MustRegister(requests, latency)

	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// Middleware instruments echo handlers with request counts and latency.
func (m *ServerMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			handler := c.Path()
			m.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
			m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}

// BreakerMetrics tracks circuit breaker state per remote operation.
// State values: 0 closed, 1 half-open, 2 open.
type BreakerMetrics struct {
	State *prometheus.GaugeVec
}

// NewBreakerMetrics registers and returns circuit breaker metrics.
func NewBreakerMetrics() *BreakerMetrics {
	state := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "orderservice",
		Subsystem: "userclient",
		Name:      "circuit_breaker_state",
		Help:      "Circuit breaker state per operation (0 closed, 1 half-open, 2 open).",
	}, []string{"operation"})

	prometheus.MustRegister(state)

	return &BreakerMetrics{State: state}
}

// SetState records the current breaker state for an operation.
func (m *BreakerMetrics) SetState(operation string, state float64) {
	m.State.WithLabelValues(operation).Set(state)
}

// Handler returns the Prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
