package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/api/http/middlewares"
)

// ServerConfig — настройки HTTP-сервера. Переменные: CALCULATOR_SERVER_HOST, CALCULATOR_SERVER_PORT, CALCULATOR_SERVER_ALLOW_ORIGINS.
type ServerConfig struct {
	Host         string   `envconfig:"HOST" default:"0.0.0.0"`
	Port         string   `envconfig:"PORT" default:"8080"`
	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173"`
}

// Addr возвращает адрес "host:port".
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Controller — контракт: контроллер регистрирует свои маршруты на роутере.
type Controller interface {
	RegisterRoutes(r *gin.Engine)
}

// Server — API-сервер: конфиг и список контроллеров.
type Server struct {
	cfg         ServerConfig
	controllers []Controller
	srv         *http.Server
	log         *slog.Logger
}

// NewServer создаёт сервер с конфигом.
func NewServer(cfg ServerConfig, log *slog.Logger) *Server {
	return &Server{cfg: cfg, controllers: nil, log: log}
}

// AddController добавляет один или несколько контроллеров.
func (s *Server) AddController(c ...Controller) {
	s.controllers = append(s.controllers, c...)
}

// Handler собирает роутер: recovery, CORS, метрики, логирование запросов и маршруты контроллеров.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	// CORS-мидлварь: зачем и как — см. комментарий в конце файла.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))
	r.Use(middlewares.PrometheusMetrics)
	r.Use(middlewares.RequestLogger(s.log))
	for _, c := range s.controllers {
		c.RegisterRoutes(r)
	}
	return r
}

// Start запускает сервер и блокируется до отмены ctx (SIGINT/SIGTERM), затем делает graceful shutdown.
// Ошибка ListenAndServe (например, занят порт) возвращается сразу.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("http server started", "addr", s.cfg.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// --- CORS ---
//
// Фронт (3000 или Vite 5173) и API (8080) — разные origin, браузер считает такие запросы cross-origin.
// Перед POST с Content-Type: application/json он шлёт preflight OPTIONS и ждёт заголовки Access-Control-Allow-*.
// Маршрута на OPTIONS у нас нет, поэтому отвечает мидлварь: 204 и разрешения из ServerConfig.AllowOrigins.
// На обычные GET/POST она только добавляет Access-Control-Allow-Origin к ответу.
