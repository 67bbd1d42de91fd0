package methods

import (
	"fmt"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// SumToTen — (10t + a)(10t + b) = 100·t(t + 1) + ab при a + b = 10.
type SumToTen struct{}

func (SumToTen) Name() domain.MethodName { return domain.MethodSumToTen }

// IsApplicable: одинаковая часть перед единицами, единицы в сумме дают 10.
func (SumToTen) IsApplicable(a, b int64) bool {
	a, b = abs64(a), abs64(b)
	return a >= 10 && b >= 10 && a/10 == b/10 && a%10+b%10 == 10
}

func (m SumToTen) ComputeCost(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return InapplicableCost
	}
	t := abs64(a) / 10
	return 0.6 + 0.2*float64(decompositionLoad(t, t+1, 1, domain.MaxSubstepDepth)) + 0.1*float64(digits(t)-1)
}

func (m SumToTen) QualityScore(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return 0
	}
	return 0.9
}

func (m SumToTen) GenerateSolution(num1, num2 int64) (*domain.Solution, error) {
	if !m.IsApplicable(num1, num2) {
		return nil, notApplicable(m.Name(), num1, num2)
	}
	a, b := abs64(num1), abs64(num2)
	steps := leadingTimesNext(a/10, a%10, b%10,
		fmt.Sprintf("Multiply the ones digits: %d × %d", a%10, b%10))
	return finalize(m.Name(), num1, num2, m.Rationale(num1, num2), steps)
}

// leadingTimesNext — общая схема t(t+1)·100 + x·y для SumToTen и SquaringEndingIn5.
func leadingTimesNext(t, x, y int64, onesExplanation string) []domain.Step {
	head := productStep(t, t+1, 0, domain.MaxSubstepDepth,
		fmt.Sprintf("Leading part times the next number up: %d × %d", t, t+1))
	head.Kind = domain.StepTerm
	hundreds := domain.Step{
		Expression:  fmt.Sprintf("%d × 100", head.Result),
		Result:      head.Result * 100,
		Explanation: "Shift into the hundreds",
	}
	ones := productStep(x, y, 0, domain.MaxSubstepDepth, onesExplanation)
	ones.Kind = domain.StepTerm
	combine := domain.Step{
		Expression:  fmt.Sprintf("%d + %d", hundreds.Result, ones.Result),
		Result:      hundreds.Result + ones.Result,
		Explanation: "Write the ones product after the hundreds",
		Kind:        domain.StepCombine,
	}
	return []domain.Step{head, hundreds, ones, combine}
}

func (SumToTen) Rationale(a, b int64) string {
	t := abs64(a) / 10
	return fmt.Sprintf("The ones digits add up to ten and the leading part %d is shared, so the answer is just %d × %d followed by the ones product.",
		t, t, t+1)
}

func (SumToTen) Characteristic() string {
	return "same leading digits, ones summing to ten"
}

func (SumToTen) GenerateStudyContent() domain.StudyContent {
	return studyContent(domain.MethodSumToTen)
}
