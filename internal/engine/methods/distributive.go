package methods

import (
	"fmt"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// Distributive — (a ± b)·c = a·c ± b·c. Применим всегда, это запасной метод для любой пары.
type Distributive struct{}

func (Distributive) Name() domain.MethodName { return domain.MethodDistributive }

func (Distributive) IsApplicable(_, _ int64) bool { return true }

// ComputeCost растёт с числом нетривиальных произведений в дереве разложения и с числом цифр.
func (Distributive) ComputeCost(a, b int64) float64 {
	a, b = abs64(a), abs64(b)
	load := decompositionLoad(a, b, 0, domain.MaxSubstepDepth)
	return 1.0 + 0.4*float64(load) + 0.1*float64(digits(a)+digits(b)-2)
}

func (Distributive) QualityScore(a, b int64) float64 {
	a, b = abs64(a), abs64(b)
	if a%10 == 0 || b%10 == 0 {
		return 0.6
	}
	return 0.5
}

func (d Distributive) GenerateSolution(num1, num2 int64) (*domain.Solution, error) {
	a, b := abs64(num1), abs64(num2)
	var steps []domain.Step
	if IsTrivialMultiplication(a, b) {
		steps = []domain.Step{{
			Expression:  fmt.Sprintf("%d × %d", a, b),
			Result:      a * b,
			Explanation: "A basic fact: no decomposition needed",
		}}
	} else {
		steps, _ = decompose(a, b, 0, domain.MaxSubstepDepth)
	}
	return finalize(d.Name(), num1, num2, d.Rationale(num1, num2), steps)
}

func (Distributive) Rationale(a, b int64) string {
	a, b = abs64(a), abs64(b)
	if IsTrivialMultiplication(a, b) {
		return "This is a basic multiplication fact, so a single step is enough."
	}
	return "Splitting one factor by place value turns the problem into a few easy partial products that you simply add up."
}

func (Distributive) Characteristic() string {
	return "works for every pair by splitting a factor into round parts"
}

func (Distributive) GenerateStudyContent() domain.StudyContent {
	return studyContent(domain.MethodDistributive)
}
