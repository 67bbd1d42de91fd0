package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger возвращает мидлварь, которая логирует каждый запрос: метод, путь, статус, длительность, client IP.
// Ответы 5xx пишутся на уровне error, 4xx на warn.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		clientIP := c.ClientIP()
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		if raw != "" {
			path = path + "?" + raw
		}
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		log.Log(c.Request.Context(), level, "request",
			"method", method,
			"path", path,
			"status", status,
			"ip", clientIP,
			"latency_ms", latency.Milliseconds(),
		)
	}
}
