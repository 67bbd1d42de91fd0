package methods

import (
	"fmt"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// Near100Window — насколько оба множителя могут отстоять от 100.
const Near100Window = 15

// Near100 — (100 + a)(100 + b) = 10000 + 100(a + b) + ab.
type Near100 struct{}

func (Near100) Name() domain.MethodName { return domain.MethodNear100 }

func (Near100) IsApplicable(a, b int64) bool {
	return abs64(abs64(a)-100) <= Near100Window && abs64(abs64(b)-100) <= Near100Window
}

func deviations(a, b int64) (int64, int64) {
	return abs64(a) - 100, abs64(b) - 100
}

// ComputeCost: сумма отклонений от 100.
func (m Near100) ComputeCost(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return InapplicableCost
	}
	da, db := deviations(a, b)
	return 0.5 + float64(abs64(da)+abs64(db))/20
}

func (m Near100) QualityScore(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return 0
	}
	da, db := deviations(a, b)
	if abs64(da)+abs64(db) <= 10 {
		return 0.95
	}
	return 0.85
}

func (m Near100) GenerateSolution(num1, num2 int64) (*domain.Solution, error) {
	if !m.IsApplicable(num1, num2) {
		return nil, notApplicable(m.Name(), num1, num2)
	}
	a, b := abs64(num1), abs64(num2)
	da, db := deviations(a, b)

	devA := domain.Step{
		Expression:  fmt.Sprintf("%d - 100", a),
		Result:      da,
		Explanation: fmt.Sprintf("Deviation of %d from 100", a),
	}
	devB := domain.Step{
		Expression:  fmt.Sprintf("%d - 100", b),
		Result:      db,
		Explanation: fmt.Sprintf("Deviation of %d from 100", b),
	}
	hundreds := domain.Step{
		Expression:  fmt.Sprintf("100 × (%s + %s)", signedTerm(da), signedTerm(db)),
		Result:      100 * (da + db),
		Explanation: "Sum of the deviations, in hundreds",
		Kind:        domain.StepTerm,
	}
	cross := productStep(abs64(da), abs64(db), 0, domain.MaxSubstepDepth,
		fmt.Sprintf("Multiply the deviations: %s × %s", signedTerm(da), signedTerm(db)))
	cross.Kind = domain.StepTerm

	crossSigned := cross.Result
	if (da < 0) != (db < 0) {
		crossSigned = -crossSigned
	}
	combine := domain.Step{
		Expression:  fmt.Sprintf("10000 %s %s", signedOp(hundreds.Result), signedOp(crossSigned)),
		Result:      10000 + hundreds.Result + crossSigned,
		Explanation: "10000, plus the hundreds, plus the product of the deviations",
		Kind:        domain.StepCombine,
	}
	if (da < 0) != (db < 0) && cross.Result != 0 {
		combine.Explanation = "10000, plus the hundreds, minus the product of the deviations (their signs differ)"
	}
	steps := []domain.Step{devA, devB, hundreds, cross, combine}
	return finalize(m.Name(), num1, num2, m.Rationale(num1, num2), steps)
}

// signedOp — "+ 5" или "- 5" для записи суммы.
func signedOp(n int64) string {
	if n < 0 {
		return fmt.Sprintf("- %d", -n)
	}
	return fmt.Sprintf("+ %d", n)
}

func (Near100) Rationale(a, b int64) string {
	da, db := deviations(a, b)
	return fmt.Sprintf("Both numbers are within %d of 100, so you only handle the small deviations %s and %s.",
		Near100Window, signedTerm(da), signedTerm(db))
}

func (Near100) Characteristic() string {
	return "both factors close to 100"
}

func (Near100) GenerateStudyContent() domain.StudyContent {
	return studyContent(domain.MethodNear100)
}
