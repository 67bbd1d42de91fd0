package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/v1/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"pong": true}) })
}

func newTestServer() *Server {
	s := NewServer(ServerConfig{
		Host:         "127.0.0.1",
		Port:         "0",
		AllowOrigins: []string{"http://localhost:5173"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.AddController(pingController{})
	return s
}

func TestServer_Routes(t *testing.T) {
	h := newTestServer().Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pong":true}`, w.Body.String())
}

func TestServer_CORSPreflight(t *testing.T) {
	h := newTestServer().Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_CORSForeignOrigin(t *testing.T) {
	h := newTestServer().Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", ServerConfig{Host: "0.0.0.0", Port: "8080"}.Addr())
}
