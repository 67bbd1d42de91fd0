package ports

//go:generate mockgen -source=engine.go -destination=../mocks/engine_mock.go -package=mocks

import "github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"

// IMethodSelector — движок выбора метода. Чистые вычисления, без контекста.
type IMethodSelector interface {
	SelectOptimalMethod(num1, num2 float64, allowed ...domain.MethodName) (*domain.MethodRanking, error)
	Catalog() []domain.MethodInfo
	StudyContent(name domain.MethodName) (domain.StudyContent, error)
}

// IProblemGenerator — подбор задач под метод.
type IProblemGenerator interface {
	Generate(name domain.MethodName) (domain.Problem, error)
}
