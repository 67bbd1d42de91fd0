package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mentalcalc",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mentalcalc",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mentalcalc",
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)
)

// PrometheusMetrics считает запросы, их длительность и число одновременных запросов.
// Сам /metrics и пробы liveness/readyness не учитываются.
func PrometheusMetrics(c *gin.Context) {
	switch c.Request.URL.Path {
	case "/metrics", "/liveness", "/readyness":
		c.Next()
		return
	}

	httpRequestsInFlight.Inc()
	defer httpRequestsInFlight.Dec()
	start := time.Now()

	c.Next()

	duration := time.Since(start).Seconds()
	status := strconv.Itoa(c.Writer.Status())
	path := c.FullPath()
	if path == "" {
		path = "unknown"
	}

	httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
}
