package methods

import (
	"fmt"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// DifferenceOfSquares — (m − d)(m + d) = m² − d², когда у пары целая середина.
type DifferenceOfSquares struct{}

func (DifferenceOfSquares) Name() domain.MethodName { return domain.MethodDifferenceOfSquares }

// IsApplicable: числа различны и их сумма чётна (середина целая).
func (DifferenceOfSquares) IsApplicable(a, b int64) bool {
	a, b = abs64(a), abs64(b)
	return a != b && (a+b)%2 == 0
}

func midpoint(a, b int64) (mid, dist int64) {
	a, b = abs64(a), abs64(b)
	mid = (a + b) / 2
	dist = abs64(a-b) / 2
	return mid, dist
}

// ComputeCost: расстояние до середины плюс штраф за некруглую середину и за трудные квадраты.
func (m DifferenceOfSquares) ComputeCost(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return InapplicableCost
	}
	mid, d := midpoint(a, b)
	cost := 1.0 + 0.2*float64(d)
	if mid%10 != 0 {
		cost += 0.8
	}
	if d >= 10 {
		cost += 0.5
	}
	cost += 0.3 * float64(decompositionLoad(mid, mid, 1, domain.MaxSubstepDepth))
	cost += 0.3 * float64(decompositionLoad(d, d, 1, domain.MaxSubstepDepth))
	return cost
}

func (m DifferenceOfSquares) QualityScore(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return 0
	}
	mid, _ := midpoint(a, b)
	switch {
	case mid%10 == 0:
		return 1.0
	case mid%5 == 0:
		return 0.8
	default:
		return 0.6
	}
}

func (m DifferenceOfSquares) GenerateSolution(num1, num2 int64) (*domain.Solution, error) {
	if !m.IsApplicable(num1, num2) {
		return nil, notApplicable(m.Name(), num1, num2)
	}
	a, b := abs64(num1), abs64(num2)
	mid, d := midpoint(a, b)
	steps := []domain.Step{
		{
			Expression: fmt.Sprintf("(%d - %d) × (%d + %d)", mid, d, mid, d),
			Result:     a * b,
			Explanation: fmt.Sprintf("%d and %d are both %d away from their midpoint %d, so the product is %d² − %d²",
				a, b, d, mid, mid, d),
		},
		squareStep(mid, 0, domain.MaxSubstepDepth, fmt.Sprintf("Square the midpoint: %d²", mid)),
		squareStep(d, 0, domain.MaxSubstepDepth, fmt.Sprintf("Square the distance: %d²", d)),
	}
	steps[1].Kind = domain.StepTerm
	steps[2].Kind = domain.StepTerm
	steps = append(steps, domain.Step{
		Expression:  fmt.Sprintf("%d - %d", steps[1].Result, steps[2].Result),
		Result:      steps[1].Result - steps[2].Result,
		Explanation: "Subtract the square of the distance from the square of the midpoint",
		Kind:        domain.StepCombine,
	})
	return finalize(m.Name(), num1, num2, m.Rationale(num1, num2), steps)
}

func (DifferenceOfSquares) Rationale(a, b int64) string {
	mid, d := midpoint(a, b)
	return fmt.Sprintf("The numbers are symmetric around %d, so one easy square minus the tiny square %d² replaces a full multiplication.", mid, d)
}

func (DifferenceOfSquares) Characteristic() string {
	return "symmetric pairs around a round midpoint"
}

func (DifferenceOfSquares) GenerateStudyContent() domain.StudyContent {
	return studyContent(domain.MethodDifferenceOfSquares)
}
