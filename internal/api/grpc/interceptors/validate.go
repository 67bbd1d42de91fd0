package interceptors

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ValidationUnaryInterceptor проверяет теги validate у запроса до вызова хэндлера.
// Нарушение — InvalidArgument с перечнем полей; запросы без тегов проходят как есть.
func ValidationUnaryInterceptor(v *validator.Validate) grpc.UnaryServerInterceptor {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if rv := reflect.ValueOf(req); rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			if err := v.Struct(req); err != nil {
				return nil, status.Error(codes.InvalidArgument, describe(err))
			}
		}
		return handler(ctx, req)
	}
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Namespace()+": "+fe.Tag())
	}
	return "invalid request: " + strings.Join(parts, "; ")
}
