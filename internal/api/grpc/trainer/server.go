package trainer

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/selector"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

// Server реализует TrainerServiceServer, вызывает use case тренажёра.
type Server struct {
	uc  ports.ITrainerUseCase
	log *slog.Logger
}

var _ TrainerServiceServer = (*Server)(nil)

// New создаёт gRPC-сервер тренажёра.
func New(uc ports.ITrainerUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// Solve выбирает метод для пары чисел и возвращает ранжирование или gRPC-ошибку.
func (s *Server) Solve(ctx context.Context, req *SolveRequest) (*SolveResponse, error) {
	allowed := make([]domain.MethodName, 0, len(req.AllowedMethods))
	for _, m := range req.AllowedMethods {
		allowed = append(allowed, domain.MethodName(m))
	}
	r, err := s.uc.Solve(ctx, req.Num1, req.Num2, allowed)
	if err != nil {
		return nil, s.toStatus("solve", err)
	}
	resp := &SolveResponse{
		Answer:            r.Answer(),
		Optimal:           toRanked(r.Optimal, ""),
		Alternatives:      make([]RankedMethod, len(r.Alternatives)),
		ComparisonSummary: r.ComparisonSummary,
	}
	for i, alt := range r.Alternatives {
		resp.Alternatives[i] = toRanked(alt.RankedMethod, alt.WhyNotOptimal)
	}
	return resp, nil
}

// History возвращает историю решённых задач из use case.
func (s *Server) History(ctx context.Context, _ *HistoryRequest) (*HistoryResponse, error) {
	list, err := s.uc.History(ctx)
	if err != nil {
		return nil, s.toStatus("history", err)
	}
	items := make([]HistoryItem, len(list))
	for i, p := range list {
		items[i] = HistoryItem{
			ID:                p.ID,
			Num1:              p.Num1,
			Num2:              p.Num2,
			Answer:            p.Answer,
			OptimalMethod:     string(p.OptimalMethod),
			CostScore:         p.CostScore,
			QualityScore:      p.QualityScore,
			TimestampUnixNano: p.Timestamp.UnixNano(),
		}
	}
	return &HistoryResponse{Items: items}, nil
}

// toStatus переводит доменную ошибку в gRPC-статус.
func (s *Server) toStatus(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownMethod):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.log.Error(op+" failed", "error", err)
	return status.Error(codes.Internal, err.Error())
}

func toRanked(m domain.RankedMethod, why string) RankedMethod {
	out := RankedMethod{
		Method:         string(m.Method),
		CostScore:      m.CostScore,
		QualityScore:   m.QualityScore,
		CompositeScore: selector.CompositeScore(m.CostScore, m.QualityScore),
		WhyNotOptimal:  why,
	}
	if m.Solution != nil {
		out.Steps = toSteps(m.Solution.Steps)
	}
	return out
}

func toSteps(steps []domain.Step) []Step {
	if len(steps) == 0 {
		return nil
	}
	out := make([]Step, len(steps))
	for i, st := range steps {
		out[i] = Step{
			Expression:  st.Expression,
			Result:      st.Result,
			Explanation: st.Explanation,
			Depth:       st.Depth,
			SubSteps:    toSteps(st.SubSteps),
		}
	}
	return out
}
