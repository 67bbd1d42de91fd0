package interceptors

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/mentalcalc.trainer.v1.TrainerService/Solve"}

func TestLoggingUnaryInterceptor(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	icpt := LoggingUnaryInterceptor(log)

	resp, err := icpt(context.Background(), "req", info, func(context.Context, any) (any, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "grpc_code=OK")

	buf.Reset()
	_, err = icpt(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "zero operand")
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	_, err = icpt(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return nil, errors.New("boom")
	})
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "grpc_code=Unknown")
}

type request struct {
	Num1 float64  `validate:"required"`
	Tags []string `validate:"max=2,dive,required"`
}

func TestValidationUnaryInterceptor(t *testing.T) {
	icpt := ValidationUnaryInterceptor(nil)
	called := 0
	handler := func(context.Context, any) (any, error) {
		called++
		return "ok", nil
	}

	_, err := icpt(context.Background(), &request{Num1: 3}, info, handler)
	require.NoError(t, err)

	_, err = icpt(context.Background(), &request{}, info, handler)
	st := status.Convert(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "invalid request: request.Num1: required", st.Message())

	_, err = icpt(context.Background(), &request{Num1: 1, Tags: []string{"a", "b", "c"}}, info, handler)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// не-структуры пропускаются без проверки
	_, err = icpt(context.Background(), "plain", info, handler)
	require.NoError(t, err)

	assert.Equal(t, 2, called)
}
