package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// ITrainerUseCase — контракт бизнес-логики тренажёра (выбор метода, история, попытки, обработка событий из Kafka).
type ITrainerUseCase interface {
	Solve(ctx context.Context, num1, num2 float64, allowed []domain.MethodName) (*domain.MethodRanking, error)
	History(ctx context.Context) ([]domain.SolvedProblem, error)
	RecordAttempt(ctx context.Context, a domain.Attempt) (*domain.Attempt, error)
	MethodStats(ctx context.Context) ([]domain.MethodStats, error)
	Methods() []domain.MethodInfo
	StudyContent(name domain.MethodName) (domain.StudyContent, error)
	GenerateProblem(ctx context.Context, name domain.MethodName) (domain.Problem, error)
	HandleSelectionEvent(ctx context.Context, ev domain.SelectionEvent) error
}
