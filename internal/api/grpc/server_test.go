package grpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/api/grpc/trainer"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/mocks"
)

// startServer поднимает сервер на bufconn и возвращает клиента.
func startServer(t *testing.T, uc *mocks.MockITrainerUseCase) *trainer.Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewServer("bufnet", uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})
	return trainer.NewClient(conn)
}

func TestServer_Solve(t *testing.T) {
	uc := mocks.NewMockITrainerUseCase(gomock.NewController(t))
	client := startServer(t, uc)

	uc.EXPECT().
		Solve(gomock.Any(), 97.0, 103.0, []domain.MethodName{domain.MethodNear100}).
		Return(&domain.MethodRanking{
			Optimal: domain.RankedMethod{
				Method:       domain.MethodNear100,
				CostScore:    1.5,
				QualityScore: 0.9,
				Solution: &domain.Solution{Steps: []domain.Step{
					{Expression: "100 × ((-3) + 3)", Result: 0},
					{Expression: "10000 + 0 - 9", Result: 9991},
				}},
			},
			ComparisonSummary: "Near 100 is the best fit for 97 × 103 (score 0.94).",
		}, nil)

	resp, err := client.Solve(context.Background(), &trainer.SolveRequest{
		Num1: 97, Num2: 103, AllowedMethods: []string{"near_100"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9991), resp.Answer)
	assert.Equal(t, "near_100", resp.Optimal.Method)
	assert.InDelta(t, 0.94, resp.Optimal.CompositeScore, 1e-9)
	assert.Len(t, resp.Optimal.Steps, 2)
	assert.Empty(t, resp.Alternatives)
}

func TestServer_Solve_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"invalid input", &domain.InputValidationError{Num1: 1.5, Num2: 3, Value: 1.5, Reason: "not an integer"}, codes.InvalidArgument},
		{"unknown method", &domain.UnknownMethodError{Name: "magic"}, codes.InvalidArgument},
		{"defect", &domain.DefectError{Kind: domain.DefectInvalidSolution, Num1: 1, Num2: 3}, codes.Internal},
		{"storage", errors.New("save problem: timeout"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewMockITrainerUseCase(gomock.NewController(t))
			client := startServer(t, uc)
			uc.EXPECT().Solve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			_, err := client.Solve(context.Background(), &trainer.SolveRequest{Num1: 1.5, Num2: 3})

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.err.Error(), st.Message())
		})
	}
}

func TestServer_Solve_Validation(t *testing.T) {
	uc := mocks.NewMockITrainerUseCase(gomock.NewController(t))
	client := startServer(t, uc)

	// use case не вызывается: пустой num2 отсекается интерцептором
	_, err := client.Solve(context.Background(), &trainer.SolveRequest{Num1: 12})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "SolveRequest.Num2: required")

	_, err = client.Solve(context.Background(), &trainer.SolveRequest{Num1: 12, Num2: 13, AllowedMethods: []string{""}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_History(t *testing.T) {
	uc := mocks.NewMockITrainerUseCase(gomock.NewController(t))
	client := startServer(t, uc)

	ts := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	uc.EXPECT().History(gomock.Any()).Return([]domain.SolvedProblem{
		{ID: 2, Num1: 35, Num2: 35, Answer: 1225, OptimalMethod: domain.MethodSquaringEndingIn5, Timestamp: ts},
	}, nil)

	resp, err := client.History(context.Background(), &trainer.HistoryRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1225), resp.Items[0].Answer)
	assert.Equal(t, "squaring_ending_in_5", resp.Items[0].OptimalMethod)
	assert.True(t, ts.Equal(resp.Items[0].Timestamp()))
}

func TestServer_History_Error(t *testing.T) {
	uc := mocks.NewMockITrainerUseCase(gomock.NewController(t))
	client := startServer(t, uc)
	uc.EXPECT().History(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := client.History(context.Background(), &trainer.HistoryRequest{})

	assert.Equal(t, codes.Internal, status.Code(err))
}
