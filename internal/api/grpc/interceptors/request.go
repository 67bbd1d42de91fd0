package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, длительность, код/ошибка (аналог HTTP request logger).
// Internal и Unknown пишутся на уровне error, прочие ошибки на warn.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		latency := time.Since(start)

		st := status.Convert(err)
		attrs := []any{"method", info.FullMethod, "latency_ms", latency.Milliseconds(), "grpc_code", st.Code()}
		switch st.Code() {
		case codes.OK:
			log.Info("grpc request", attrs...)
		case codes.Internal, codes.Unknown:
			log.Error("grpc request", append(attrs, "error", st.Message())...)
		default:
			log.Warn("grpc request", append(attrs, "error", st.Message())...)
		}
		return resp, err
	}
}
