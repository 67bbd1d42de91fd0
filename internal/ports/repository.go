package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// IProblemRepository — контракт сохранения решённых задач и попыток ученика.
type IProblemRepository interface {
	SaveProblem(ctx context.Context, p domain.SolvedProblem) error
	GetHistory(ctx context.Context) ([]domain.SolvedProblem, error)
	SaveAttempt(ctx context.Context, a domain.Attempt) error
	// MethodStats — агрегаты попыток по методам.
	MethodStats(ctx context.Context) ([]domain.MethodStats, error)
	Ping(ctx context.Context) error
}
