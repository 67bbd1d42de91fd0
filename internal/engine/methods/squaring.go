package methods

import (
	"fmt"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// Squaring — (a ± b)² = a² ± 2ab + b², где a — ближайший десяток.
type Squaring struct{}

func (Squaring) Name() domain.MethodName { return domain.MethodSquaring }

func (Squaring) IsApplicable(a, b int64) bool { return abs64(a) == abs64(b) }

// roundAnchor — ближайший десяток; при единицах 5 округляем вниз, чтобы складывать, а не вычитать.
func roundAnchor(n int64) (base, delta int64) {
	n = abs64(n)
	base = n / 10 * 10
	if n%10 > 5 {
		base += 10
	}
	return base, n - base
}

// ComputeCost: расстояние до ближайшего десятка.
func (m Squaring) ComputeCost(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return InapplicableCost
	}
	n := abs64(a)
	_, d := roundAnchor(n)
	extra := digits(n) - 2
	if extra < 0 {
		extra = 0
	}
	return 1.0 + 0.3*float64(abs64(d)) + 0.1*float64(extra)
}

func (m Squaring) QualityScore(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return 0
	}
	_, d := roundAnchor(a)
	switch {
	case d == 0:
		return 1.0
	case abs64(d) <= 2:
		return 0.9
	default:
		return 0.85
	}
}

func (m Squaring) GenerateSolution(num1, num2 int64) (*domain.Solution, error) {
	if !m.IsApplicable(num1, num2) {
		return nil, notApplicable(m.Name(), num1, num2)
	}
	n := abs64(num1)
	base, d := roundAnchor(n)
	if d == 0 || base == 0 {
		step := squareStep(n, 0, domain.MaxSubstepDepth, fmt.Sprintf("Square %d directly", n))
		return finalize(m.Name(), num1, num2, m.Rationale(num1, num2), []domain.Step{step})
	}

	dist := abs64(d)
	part := Partition{Value: n, Base: base, Offset: dist, Subtractive: d < 0}
	split := domain.Step{
		Expression:  part.Expression(),
		Result:      n,
		Explanation: describePartition(part),
		Kind:        domain.StepPartition,
	}
	sq := squareStep(base, 0, domain.MaxSubstepDepth, fmt.Sprintf("Square the round number: %d²", base))
	sq.Kind = domain.StepTerm

	subs, op := GenerateRecursiveSubSteps(2*base, dist, 0, domain.MaxSubstepDepth)
	cross := domain.Step{
		Expression:  fmt.Sprintf("2 × %d × %d", base, dist),
		Result:      2 * base * dist,
		Explanation: "Twice the round number times the distance",
		Kind:        domain.StepTerm,
		Combine:     op,
		SubSteps:    subs,
	}
	small := squareStep(dist, 0, domain.MaxSubstepDepth, fmt.Sprintf("Square the distance: %d²", dist))
	small.Kind = domain.StepTerm

	combine := domain.Step{Kind: domain.StepCombine}
	if d < 0 {
		combine.Expression = fmt.Sprintf("%d - %d + %d", sq.Result, cross.Result, small.Result)
		combine.Result = sq.Result - cross.Result + small.Result
		combine.Explanation = "Round square, minus the cross term, plus the small square"
	} else {
		combine.Expression = fmt.Sprintf("%d + %d + %d", sq.Result, cross.Result, small.Result)
		combine.Result = sq.Result + cross.Result + small.Result
		combine.Explanation = "Add the round square, the cross term and the small square"
	}
	steps := []domain.Step{split, sq, cross, small, combine}
	return finalize(m.Name(), num1, num2, m.Rationale(num1, num2), steps)
}

func (Squaring) Rationale(a, _ int64) string {
	base, d := roundAnchor(a)
	if d == 0 {
		return fmt.Sprintf("%d is already round, so its square is a basic fact followed by zeros.", abs64(a))
	}
	return fmt.Sprintf("Squaring around the round number %d leaves only a cross term and the small square %d².", base, abs64(d))
}

func (Squaring) Characteristic() string {
	return "squares expanded around the nearest ten"
}

func (Squaring) GenerateStudyContent() domain.StudyContent {
	return studyContent(domain.MethodSquaring)
}
