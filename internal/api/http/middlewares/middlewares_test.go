package middlewares

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PrometheusMetrics)
	r.GET("/api/v1/methods", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/methods", "200")
	before := testutil.ToFloat64(counter)

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/methods", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight), "после ответа в полёте ничего не остаётся")

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unknown", "404")))
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/api/v1/history", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=5", nil))
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "path=\"/api/v1/history?limit=5\"")
	assert.Contains(t, buf.String(), "status=200")

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=500")

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Contains(t, buf.String(), "level=WARN")
}
