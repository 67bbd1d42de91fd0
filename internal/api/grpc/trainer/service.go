package trainer

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/api/grpc/codec"
)

// Имя сервиса и полные имена методов.
const (
	ServiceName       = "mentalcalc.trainer.v1.TrainerService"
	SolveFullMethod   = "/" + ServiceName + "/Solve"
	HistoryFullMethod = "/" + ServiceName + "/History"
)

// SolveRequest — два числа и необязательный список разрешённых методов.
type SolveRequest struct {
	Num1           float64  `json:"num1" validate:"required"`
	Num2           float64  `json:"num2" validate:"required"`
	AllowedMethods []string `json:"allowed_methods" validate:"max=8,dive,required"`
}

// Step — узел дерева шагов.
type Step struct {
	Expression  string `json:"expression"`
	Result      int64  `json:"result"`
	Explanation string `json:"explanation"`
	Depth       int    `json:"depth"`
	SubSteps    []Step `json:"sub_steps,omitempty"`
}

// RankedMethod — метод с оценками и шагами.
type RankedMethod struct {
	Method         string  `json:"method"`
	CostScore      float64 `json:"cost_score"`
	QualityScore   float64 `json:"quality_score"`
	CompositeScore float64 `json:"composite_score"`
	WhyNotOptimal  string  `json:"why_not_optimal,omitempty"`
	Steps          []Step  `json:"steps"`
}

// SolveResponse — ранжирование для пары чисел.
type SolveResponse struct {
	Answer            int64          `json:"answer"`
	Optimal           RankedMethod   `json:"optimal"`
	Alternatives      []RankedMethod `json:"alternatives"`
	ComparisonSummary string         `json:"comparison_summary"`
}

// HistoryRequest — пустой запрос истории.
type HistoryRequest struct{}

// HistoryItem — решённая задача.
type HistoryItem struct {
	ID                int     `json:"id"`
	Num1              int64   `json:"num1"`
	Num2              int64   `json:"num2"`
	Answer            int64   `json:"answer"`
	OptimalMethod     string  `json:"optimal_method"`
	CostScore         float64 `json:"cost_score"`
	QualityScore      float64 `json:"quality_score"`
	TimestampUnixNano int64   `json:"timestamp_unix_nano"`
}

// HistoryResponse — история, новые первыми.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// Timestamp возвращает время записи.
func (h HistoryItem) Timestamp() time.Time {
	return time.Unix(0, h.TimestampUnixNano)
}

// TrainerServiceServer — серверная сторона сервиса.
type TrainerServiceServer interface {
	Solve(ctx context.Context, req *SolveRequest) (*SolveResponse, error)
	History(ctx context.Context, req *HistoryRequest) (*HistoryResponse, error)
}

// RegisterTrainerServiceServer регистрирует реализацию сервиса на gRPC-сервере.
func RegisterTrainerServiceServer(s grpc.ServiceRegistrar, srv TrainerServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TrainerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Solve", Handler: solveHandler},
		{MethodName: "History", Handler: historyHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mentalcalc/trainer/v1/trainer.json",
}

func solveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrainerServiceServer).Solve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SolveFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrainerServiceServer).Solve(ctx, req.(*SolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func historyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrainerServiceServer).History(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: HistoryFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrainerServiceServer).History(ctx, req.(*HistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Client — клиент сервиса; все вызовы идут с content-subtype json.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient создаёт клиента поверх соединения.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Solve вызывает TrainerService.Solve.
func (c *Client) Solve(ctx context.Context, in *SolveRequest, opts ...grpc.CallOption) (*SolveResponse, error) {
	out := new(SolveResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, SolveFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// History вызывает TrainerService.History.
func (c *Client) History(ctx context.Context, in *HistoryRequest, opts ...grpc.CallOption) (*HistoryResponse, error) {
	out := new(HistoryResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, HistoryFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
