package methods

import (
	"fmt"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// SquaringEndingIn5 — (10t + 5)² = 100·t(t + 1) + 25.
type SquaringEndingIn5 struct{}

func (SquaringEndingIn5) Name() domain.MethodName { return domain.MethodSquaringEndingIn5 }

func (SquaringEndingIn5) IsApplicable(a, b int64) bool {
	a, b = abs64(a), abs64(b)
	return a == b && a >= 15 && a%10 == 5
}

func (m SquaringEndingIn5) ComputeCost(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return InapplicableCost
	}
	t := abs64(a) / 10
	return 0.5 + 0.2*float64(decompositionLoad(t, t+1, 1, domain.MaxSubstepDepth))
}

func (m SquaringEndingIn5) QualityScore(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return 0
	}
	return 1.0
}

func (m SquaringEndingIn5) GenerateSolution(num1, num2 int64) (*domain.Solution, error) {
	if !m.IsApplicable(num1, num2) {
		return nil, notApplicable(m.Name(), num1, num2)
	}
	n := abs64(num1)
	steps := leadingTimesNext(n/10, 5, 5, "Every number ending in 5 squares to ...25: 5 × 5")
	return finalize(m.Name(), num1, num2, m.Rationale(num1, num2), steps)
}

func (SquaringEndingIn5) Rationale(a, _ int64) string {
	t := abs64(a) / 10
	return fmt.Sprintf("A square ending in 5 is always %d × %d followed by 25: no carrying at all.", t, t+1)
}

func (SquaringEndingIn5) Characteristic() string {
	return "squares of numbers ending in 5"
}

func (SquaringEndingIn5) GenerateStudyContent() domain.StudyContent {
	return studyContent(domain.MethodSquaringEndingIn5)
}
