package methods

import (
	"fmt"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// NearPowerOfTen — (P ± d)·c = P·c ± d·c, когда один множитель в пределах 10% от 10, 100 или 1000.
type NearPowerOfTen struct{}

var powersOfTen = []int64{10, 100, 1000}

type powerAnchor struct {
	operand int64 // число возле степени
	other   int64
	power   int64
	delta   int64 // operand - power, не ноль
}

// nearestPower — ближайшая степень десяти в пределах 10%; само число-степень не считается.
func nearestPower(n int64) (power, delta int64, ok bool) {
	n = abs64(n)
	for _, p := range powersOfTen {
		d := n - p
		if d != 0 && abs64(d)*10 <= p {
			if !ok || abs64(d)*power < abs64(delta)*p {
				power, delta, ok = p, d, true
			}
		}
	}
	return power, delta, ok
}

// anchor выбирает операнд с меньшим относительным отклонением; при равенстве — первый.
func (NearPowerOfTen) anchor(a, b int64) (powerAnchor, bool) {
	a, b = abs64(a), abs64(b)
	pa, da, okA := nearestPower(a)
	pb, db, okB := nearestPower(b)
	switch {
	case okA && okB:
		if abs64(db)*pa < abs64(da)*pb {
			return powerAnchor{operand: b, other: a, power: pb, delta: db}, true
		}
		return powerAnchor{operand: a, other: b, power: pa, delta: da}, true
	case okA:
		return powerAnchor{operand: a, other: b, power: pa, delta: da}, true
	case okB:
		return powerAnchor{operand: b, other: a, power: pb, delta: db}, true
	}
	return powerAnchor{}, false
}

func (m NearPowerOfTen) Name() domain.MethodName { return domain.MethodNearPowerOfTen }

func (m NearPowerOfTen) IsApplicable(a, b int64) bool {
	_, ok := m.anchor(a, b)
	return ok
}

// ComputeCost: отклонение от степени и длина второго множителя.
func (m NearPowerOfTen) ComputeCost(a, b int64) float64 {
	an, ok := m.anchor(a, b)
	if !ok {
		return InapplicableCost
	}
	return 0.8 + 0.2*float64(abs64(an.delta)) + 0.1*float64(digits(an.other)-1)
}

func (m NearPowerOfTen) QualityScore(a, b int64) float64 {
	if !m.IsApplicable(a, b) {
		return 0
	}
	return 0.8
}

func (m NearPowerOfTen) GenerateSolution(num1, num2 int64) (*domain.Solution, error) {
	an, ok := m.anchor(num1, num2)
	if !ok {
		return nil, notApplicable(m.Name(), num1, num2)
	}
	d := abs64(an.delta)
	part := Partition{Value: an.operand, Base: an.power, Offset: d, Subtractive: an.delta < 0}

	split := domain.Step{
		Expression:  part.Expression(),
		Result:      an.operand,
		Explanation: fmt.Sprintf("%d is %d away from %d", an.operand, d, an.power),
		Kind:        domain.StepPartition,
	}
	round := productStep(an.power, an.other, 0, domain.MaxSubstepDepth,
		fmt.Sprintf("Multiplying by %d only shifts digits: %d × %d", an.power, an.power, an.other))
	round.Kind = domain.StepTerm
	correction := productStep(d, an.other, 0, domain.MaxSubstepDepth,
		fmt.Sprintf("Correction for the distance: %d × %d", d, an.other))
	correction.Kind = domain.StepTerm

	combine := domain.Step{Kind: domain.StepCombine}
	if part.Subtractive {
		combine.Expression = fmt.Sprintf("%d - %d", round.Result, correction.Result)
		combine.Result = round.Result - correction.Result
		combine.Explanation = "Subtract the correction"
	} else {
		combine.Expression = fmt.Sprintf("%d + %d", round.Result, correction.Result)
		combine.Result = round.Result + correction.Result
		combine.Explanation = "Add the correction"
	}
	steps := []domain.Step{split, round, correction, combine}
	return finalize(m.Name(), num1, num2, m.Rationale(num1, num2), steps)
}

func (m NearPowerOfTen) Rationale(a, b int64) string {
	an, ok := m.anchor(a, b)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d sits right next to %d, and multiplying by a power of ten is just shifting digits; only a small correction of %d × %d remains.",
		an.operand, an.power, abs64(an.delta), an.other)
}

func (NearPowerOfTen) Characteristic() string {
	return "one factor hugs 10, 100 or 1000"
}

func (NearPowerOfTen) GenerateStudyContent() domain.StudyContent {
	return studyContent(domain.MethodNearPowerOfTen)
}
