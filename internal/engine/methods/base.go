package methods

import (
	"fmt"
	"strconv"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// Общие утилиты разложения: тривиальные произведения, разбиение на круглую часть и остаток,
// рекурсивное построение подшагов с ограничением глубины. Работают с неотрицательными числами.

// IsTrivialMultiplication — базовый случай рекурсии: произведение, которое считается в уме сразу.
func IsTrivialMultiplication(a, b int64) bool {
	a, b = abs64(a), abs64(b)
	switch {
	case a == 0 || b == 0, a == 1 || b == 1, a == 10 || b == 10:
		return true
	case a < 10 && b < 10:
		return true
	case a < 10 && isTwoDigitRound(b), b < 10 && isTwoDigitRound(a):
		return true
	case isTwoDigitRound(a) && isTwoDigitRound(b):
		return true
	}
	return false
}

func isTwoDigitRound(n int64) bool { return n >= 10 && n < 100 && n%10 == 0 }

// Partition — разбиение числа: Base + Offset или Base − Offset.
type Partition struct {
	Value       int64
	Base        int64
	Offset      int64
	Subtractive bool
}

// Expression — запись разбиения, например "50 - 3".
func (p Partition) Expression() string {
	if p.Subtractive {
		return fmt.Sprintf("%d - %d", p.Base, p.Offset)
	}
	return fmt.Sprintf("%d + %d", p.Base, p.Offset)
}

// OptimalPartition выбирает разбиение n > 0: вычитательное от следующего десятка, если до него не больше 5,
// иначе старший разряд + остаток (для двузначных — десятки + единицы).
func OptimalPartition(n int64) Partition {
	n = abs64(n)
	if ones := n % 10; ones != 0 {
		upper := (n/10 + 1) * 10
		if dist := upper - n; dist <= 5 {
			return Partition{Value: n, Base: upper, Offset: dist, Subtractive: true}
		}
	}
	mag := pow10(digits(n) - 1)
	lead := n / mag * mag
	return Partition{Value: n, Base: lead, Offset: n - lead}
}

// decompositionPlan — как разложить a × b на один уровень.
type decompositionPlan struct {
	strip bool

	// разбиение: partitioned = part, other — второй множитель
	part  Partition
	other int64

	// снятие нулей: a' × b' × scale
	strippedA int64
	strippedB int64
	scale     int64
	zeros     int
}

// planDecomposition выбирает, что разбивать: операнд с большим числом цифр (при равенстве — больший).
// Круглый операнд не разбиваем, если второй не круглый; если разбивать нечего — снимаем нули.
func planDecomposition(a, b int64) (decompositionPlan, bool) {
	p, q := a, b
	if digits(b) > digits(a) || (digits(b) == digits(a) && b > a) {
		p, q = b, a
	}
	if p%10 == 0 && q%10 != 0 {
		p, q = q, p
	}
	if p >= 10 && p%10 != 0 {
		part := OptimalPartition(p)
		if part.Offset > 0 && part.Base > 0 {
			return decompositionPlan{part: part, other: q}, true
		}
	}
	sa, za := stripZeros(a)
	sb, zb := stripZeros(b)
	if za+zb == 0 {
		return decompositionPlan{}, false
	}
	return decompositionPlan{
		strip:     true,
		strippedA: sa,
		strippedB: sb,
		zeros:     za + zb,
		scale:     pow10(za + zb),
	}, true
}

// factorPairs — произведения, которые план порождает на следующем уровне.
func (p decompositionPlan) factorPairs() [][2]int64 {
	if p.strip {
		return [][2]int64{{p.strippedA, p.strippedB}}
	}
	return [][2]int64{{p.part.Base, p.other}, {p.part.Offset, p.other}}
}

// GenerateRecursiveSubSteps строит подшаги для шага "a × b" глубины depth.
// Тривиальное произведение или достигнутый предел глубины — лист без подшагов.
func GenerateRecursiveSubSteps(a, b int64, depth, maxDepth int) ([]domain.Step, domain.Combine) {
	a, b = abs64(a), abs64(b)
	if IsTrivialMultiplication(a, b) || depth >= maxDepth {
		return nil, domain.CombineNone
	}
	return decompose(a, b, depth+1, maxDepth)
}

// decompose раскладывает a × b в шаги уровня level: разбиение, частичные произведения, сборка.
func decompose(a, b int64, level, maxDepth int) ([]domain.Step, domain.Combine) {
	plan, ok := planDecomposition(a, b)
	if !ok {
		return nil, domain.CombineNone
	}
	if plan.strip {
		inner := productStep(plan.strippedA, plan.strippedB, level, maxDepth,
			fmt.Sprintf("Drop the trailing zeros and multiply %d × %d", plan.strippedA, plan.strippedB))
		inner.Kind = domain.StepTerm
		scale := domain.Step{
			Expression:  strconv.FormatInt(plan.scale, 10),
			Result:      plan.scale,
			Explanation: fmt.Sprintf("%d dropped zero(s) give a scale of %d", plan.zeros, plan.scale),
			Depth:       level,
			Kind:        domain.StepTerm,
		}
		combine := domain.Step{
			Expression:  fmt.Sprintf("%d × %d", inner.Result, plan.scale),
			Result:      inner.Result * plan.scale,
			Explanation: fmt.Sprintf("Scale back up: append %d zero(s)", plan.zeros),
			Depth:       level,
			Kind:        domain.StepCombine,
		}
		return []domain.Step{inner, scale, combine}, domain.CombineProduct
	}

	part, q := plan.part, plan.other
	split := domain.Step{
		Expression:  part.Expression(),
		Result:      part.Value,
		Explanation: describePartition(part),
		Depth:       level,
		Kind:        domain.StepPartition,
	}
	first := productStep(part.Base, q, level, maxDepth,
		fmt.Sprintf("Multiply the round part: %d × %d", part.Base, q))
	first.Kind = domain.StepTerm
	second := productStep(part.Offset, q, level, maxDepth,
		fmt.Sprintf("Multiply the remainder: %d × %d", part.Offset, q))
	second.Kind = domain.StepTerm

	op := domain.CombineSum
	result := first.Result + second.Result
	sign := "+"
	verb := "Add"
	if part.Subtractive {
		op = domain.CombineDifference
		result = first.Result - second.Result
		sign = "-"
		verb = "Subtract"
	}
	combine := domain.Step{
		Expression:  fmt.Sprintf("%d %s %d", first.Result, sign, second.Result),
		Result:      result,
		Explanation: fmt.Sprintf("%s the partial products", verb),
		Depth:       level,
		Kind:        domain.StepCombine,
	}
	return []domain.Step{split, first, second, combine}, op
}

func describePartition(p Partition) string {
	if p.Subtractive {
		return fmt.Sprintf("%d is %d below %d: write it as %d − %d", p.Value, p.Offset, p.Base, p.Base, p.Offset)
	}
	return fmt.Sprintf("Split %d by place value into %d + %d", p.Value, p.Base, p.Offset)
}

// productStep — шаг "x × y" с рекурсивными подшагами.
func productStep(x, y int64, depth, maxDepth int, explanation string) domain.Step {
	subs, op := GenerateRecursiveSubSteps(x, y, depth, maxDepth)
	return domain.Step{
		Expression:  fmt.Sprintf("%d × %d", x, y),
		Result:      x * y,
		Explanation: explanation,
		Depth:       depth,
		Combine:     op,
		SubSteps:    subs,
	}
}

// squareStep — шаг "n × n" (n²) с рекурсивными подшагами.
func squareStep(n int64, depth, maxDepth int, explanation string) domain.Step {
	return productStep(n, n, depth, maxDepth, explanation)
}

// decompositionLoad — число нетривиальных произведений в дереве разложения a × b,
// если его шаги начинаются на уровне level. Мера усилия для стоимостей.
func decompositionLoad(a, b int64, level, maxDepth int) int {
	a, b = abs64(a), abs64(b)
	if IsTrivialMultiplication(a, b) {
		return 0
	}
	if level > maxDepth {
		return 1
	}
	plan, ok := planDecomposition(a, b)
	if !ok {
		return 1
	}
	n := 1
	for _, pair := range plan.factorPairs() {
		n += decompositionLoad(pair[0], pair[1], level+1, maxDepth)
	}
	return n
}

// withSign добавляет шаг со знаком, если произведение отрицательное.
func withSign(steps []domain.Step, num1, num2 int64) []domain.Step {
	if (num1 < 0) == (num2 < 0) || len(steps) == 0 {
		return steps
	}
	last := steps[len(steps)-1].Result
	return append(steps, domain.Step{
		Expression:  fmt.Sprintf("-1 × %d", last),
		Result:      -last,
		Explanation: "Exactly one factor is negative, so the product is negative",
	})
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// digits — число десятичных цифр |n|; для 0 — 1.
func digits(n int64) int {
	n = abs64(n)
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func pow10(k int) int64 {
	v := int64(1)
	for i := 0; i < k; i++ {
		v *= 10
	}
	return v
}

// stripZeros снимает хвостовые нули: 4500 -> (45, 2).
func stripZeros(n int64) (int64, int) {
	z := 0
	for n != 0 && n%10 == 0 {
		n /= 10
		z++
	}
	return n, z
}

func isPowerOfTwo(n int64) bool { return n > 0 && n&(n-1) == 0 }

// signedTerm форматирует число для выражения: отрицательные в скобках.
func signedTerm(n int64) string {
	if n < 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return strconv.FormatInt(n, 10)
}
