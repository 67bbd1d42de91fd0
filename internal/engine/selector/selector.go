// Package selector ранжирует применимые методы для пары чисел и строит объяснения выбора.
package selector

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/methods"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/validator"
)

const (
	// CostWeight и QualityWeight — веса итоговой оценки.
	CostWeight    = 0.6
	QualityWeight = 0.4

	// maxAlternatives — сколько альтернатив попадает в ранжирование.
	maxAlternatives = 2
)

// CompositeScore — cost×0.6 + (1−quality)×0.4, меньше — лучше.
func CompositeScore(cost, quality float64) float64 {
	return cost*CostWeight + (1-quality)*QualityWeight
}

// Selector выбирает оптимальный метод. Без изменяемого состояния, кроме кэша факторизации внутри реестра.
type Selector struct {
	registry   []methods.Method
	thresholds Thresholds
	log        *slog.Logger
}

// New создаёт селектор над фиксированным реестром методов.
func New(log *slog.Logger, thresholds Thresholds, factors methods.FactorCache) *Selector {
	return newWithMethods(methods.Registry(factors), thresholds, log)
}

func newWithMethods(registry []methods.Method, thresholds Thresholds, log *slog.Logger) *Selector {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Selector{registry: registry, thresholds: thresholds, log: log}
}

// Methods — методы реестра в порядке разрешения ничьих.
func (s *Selector) Methods() []methods.Method {
	return slices.Clone(s.registry)
}

// SelectOptimalMethod проверяет ввод, ранжирует применимые методы, строит и сверяет решения лучших трёх.
// Ошибка ввода — *domain.InputValidationError; внутренняя несогласованность — *domain.DefectError.
func (s *Selector) SelectOptimalMethod(num1, num2 float64, allowed ...domain.MethodName) (*domain.MethodRanking, error) {
	a, b, err := ValidateOperands(num1, num2)
	if err != nil {
		return nil, err
	}

	candidates := s.applicable(a, b, allowed)
	if len(candidates) == 0 {
		s.log.Error("no applicable method", "num1", a, "num2", b)
		return nil, &domain.DefectError{Kind: domain.DefectNoApplicableMethod, Num1: a, Num2: b}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].composite < candidates[j].composite
	})
	if len(candidates) > maxAlternatives+1 {
		candidates = candidates[:maxAlternatives+1]
	}

	solutions := make([]*domain.Solution, 0, len(candidates))
	for _, c := range candidates {
		sol, err := c.method.GenerateSolution(a, b)
		if err != nil {
			s.log.Error("solution generation failed", "method", c.method.Name(), "num1", a, "num2", b, "error", err)
			return nil, fmt.Errorf("generate %s: %w", c.method.Name(), err)
		}
		solutions = append(solutions, sol)
	}

	if !validator.CrossValidate(a, b, solutions) {
		details := validator.FinalResults(solutions)
		s.log.Error("cross-validation failed", "num1", a, "num2", b, "results", details)
		return nil, &domain.DefectError{Kind: domain.DefectCrossValidation, Num1: a, Num2: b, Details: details}
	}

	optimal := candidates[0]
	ranking := &domain.MethodRanking{
		Optimal:           optimal.ranked(solutions[0]),
		ComparisonSummary: comparisonSummary(a, b, optimal, candidates[1:]),
	}
	for i, alt := range candidates[1:] {
		ranking.Alternatives = append(ranking.Alternatives, domain.Alternative{
			RankedMethod:  alt.ranked(solutions[i+1]),
			WhyNotOptimal: s.thresholds.whyNotOptimal(optimal, alt),
		})
	}

	s.log.Debug("method selected",
		"num1", a,
		"num2", b,
		"method", optimal.method.Name(),
		"composite", optimal.composite,
		"alternatives", len(ranking.Alternatives),
	)
	return ranking, nil
}

// applicable — применимые методы с оценками, в порядке реестра. Пустое пересечение с allowed
// означает, что ограничение отбрасывается.
func (s *Selector) applicable(a, b int64, allowed []domain.MethodName) []scored {
	var all, restricted []scored
	for _, m := range s.registry {
		if !m.IsApplicable(a, b) {
			continue
		}
		cost, quality := m.ComputeCost(a, b), m.QualityScore(a, b)
		c := scored{method: m, cost: cost, quality: quality, composite: CompositeScore(cost, quality)}
		all = append(all, c)
		if slices.Contains(allowed, m.Name()) {
			restricted = append(restricted, c)
		}
	}
	if len(allowed) > 0 && len(restricted) > 0 {
		return restricted
	}
	if len(allowed) > 0 {
		s.log.Debug("allow-list matches no applicable method, using all", "num1", a, "num2", b, "allowed", allowed)
	}
	return all
}

// ValidateOperands отклоняет нечисла, ноль, дробные, слишком большие операнды и произведение вне точного диапазона.
func ValidateOperands(num1, num2 float64) (int64, int64, error) {
	for _, v := range []float64{num1, num2} {
		reject := func(reason string) error {
			return &domain.InputValidationError{Num1: num1, Num2: num2, Value: v, Reason: reason}
		}
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return 0, 0, reject("operand is not a finite number")
		case v == 0:
			return 0, 0, reject("operand is zero")
		case v != math.Trunc(v):
			return 0, 0, reject("operand is not an integer")
		case math.Abs(v) > domain.AbsoluteMaxValue:
			return 0, 0, reject(fmt.Sprintf("operand magnitude exceeds %d", domain.AbsoluteMaxValue))
		}
	}
	a, b := int64(num1), int64(num2)
	product := a * b
	if product < 0 {
		product = -product
	}
	if product > domain.MaxSafeInteger {
		return 0, 0, &domain.InputValidationError{
			Num1:   num1,
			Num2:   num2,
			Value:  float64(product),
			Reason: fmt.Sprintf("product exceeds %d", int64(domain.MaxSafeInteger)),
		}
	}
	return a, b, nil
}

// Catalog — методы реестра с краткой характеристикой.
func (s *Selector) Catalog() []domain.MethodInfo {
	out := make([]domain.MethodInfo, 0, len(s.registry))
	for _, m := range s.registry {
		out = append(out, domain.MethodInfo{
			Name:           m.Name(),
			DisplayName:    m.Name().DisplayName(),
			Characteristic: m.Characteristic(),
		})
	}
	return out
}

// StudyContent — учебный текст метода; неизвестное имя — *domain.UnknownMethodError.
func (s *Selector) StudyContent(name domain.MethodName) (domain.StudyContent, error) {
	m, err := methods.Lookup(s.registry, name)
	if err != nil {
		return domain.StudyContent{}, err
	}
	return m.GenerateStudyContent(), nil
}
