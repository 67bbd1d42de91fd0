package grpc

import (
	"context"
	"log/slog"
	"net"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/api/grpc/interceptors"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/api/grpc/trainer"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

// Config — настройки gRPC-сервера. Переменные: CALCULATOR_GRPC_HOST, CALCULATOR_GRPC_PORT.
type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
}

// Addr возвращает адрес "host:port".
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server — gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc *grpc.Server
	addr string
}

// NewServer создаёт gRPC-сервер и регистрирует TrainerService.
// Цепочка интерцепторов: логирование (метод, latency_ms, grpc_code), затем проверка запроса validator-ом.
func NewServer(addr string, uc ports.ITrainerUseCase, log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.LoggingUnaryInterceptor(log),
		interceptors.ValidationUnaryInterceptor(validator.New(validator.WithRequiredStructEnabled())),
	))
	trainer.RegisterTrainerServiceServer(s, trainer.New(uc, log))
	return &Server{grpc: s, addr: addr}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve принимает соединения на готовом listener (в тестах — bufconn).
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop останавливает сервер (graceful).
func (s *Server) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
