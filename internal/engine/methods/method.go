// Package methods — варианты устного умножения за общим контрактом Method и их общий механизм разложения.
//
// Набор методов закрыт: реестр фиксирован на этапе компиляции, его порядок — правило разрешения ничьих в селекторе.
package methods

import (
	"errors"
	"fmt"
	"math"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/validator"
)

// ErrNotApplicable — решение запрошено у метода, чьё условие применимости не выполнено.
var ErrNotApplicable = errors.New("method not applicable")

// InapplicableCost — стоимость неприменимого метода.
var InapplicableCost = math.Inf(1)

// Method — контракт варианта. Все операции чистые по (a, b), кроме кэша факторизации.
type Method interface {
	Name() domain.MethodName
	IsApplicable(a, b int64) bool
	// ComputeCost — эвристика когнитивной нагрузки, меньше — проще. Для неприменимого — InapplicableCost.
	ComputeCost(a, b int64) float64
	// QualityScore — элегантность в [0, 1], не зависит от стоимости.
	QualityScore(a, b int64) float64
	// GenerateSolution строит шаги и сразу их проверяет; невалидное решение — *domain.DefectError.
	GenerateSolution(a, b int64) (*domain.Solution, error)
	GenerateStudyContent() domain.StudyContent
	// Rationale — почему структура метода облегчает именно эту пару.
	Rationale(a, b int64) string
	// Characteristic — одна строка о методе для списка альтернатив.
	Characteristic() string
}

// Registry возвращает методы в фиксированном порядке разрешения ничьих.
func Registry(factors FactorCache) []Method {
	return []Method{
		Distributive{},
		DifferenceOfSquares{},
		NearPowerOfTen{},
		NewFactorization(factors),
		Squaring{},
		Near100{},
		SumToTen{},
		SquaringEndingIn5{},
	}
}

// Names — имена методов в порядке реестра.
func Names() []domain.MethodName {
	return []domain.MethodName{
		domain.MethodDistributive,
		domain.MethodDifferenceOfSquares,
		domain.MethodNearPowerOfTen,
		domain.MethodFactorization,
		domain.MethodSquaring,
		domain.MethodNear100,
		domain.MethodSumToTen,
		domain.MethodSquaringEndingIn5,
	}
}

// Lookup находит метод реестра по имени.
func Lookup(registry []Method, name domain.MethodName) (Method, error) {
	for _, m := range registry {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, &domain.UnknownMethodError{Name: string(name)}
}

func notApplicable(m domain.MethodName, a, b int64) error {
	return fmt.Errorf("%w: %s for %d × %d", ErrNotApplicable, m, a, b)
}

// finalize собирает решение, добавляет знак и проверяет его. Провал проверки — дефект метода.
func finalize(method domain.MethodName, num1, num2 int64, reason string, steps []domain.Step) (*domain.Solution, error) {
	sol := &domain.Solution{
		Method:        method,
		OptimalReason: reason,
		Steps:         withSign(steps, num1, num2),
	}
	res := validator.ValidateSolution(num1, num2, sol)
	sol.Validated = res.Valid
	sol.ValidationErrors = res.Errors
	if !res.Valid {
		return nil, &domain.DefectError{
			Kind:    domain.DefectInvalidSolution,
			Method:  method,
			Num1:    num1,
			Num2:    num2,
			Details: res.Errors,
		}
	}
	return sol, nil
}
