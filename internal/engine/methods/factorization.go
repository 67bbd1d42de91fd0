package methods

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/pkg/fifo"
)

// FactorScoreThreshold — пара множителей считается удобной, если её оценка не больше порога.
const FactorScoreThreshold = 0.0

// FactorCache — кэш разложений |n| -> пары множителей, отсортированные по оценке.
// Реализация должна быть потокобезопасной, если один Factorization обслуживает несколько горутин.
type FactorCache interface {
	Get(n int64) ([]domain.FactorPair, bool)
	Put(n int64, pairs []domain.FactorPair)
}

// NewFactorCache — FIFO-кэш заданной ёмкости (по умолчанию 1000).
func NewFactorCache(capacity int) FactorCache {
	return fifo.New[int64, []domain.FactorPair](capacity)
}

// Factorization — a·b = f·(g·b) при a = f·g.
type Factorization struct {
	cache  FactorCache
	flight singleflight.Group
}

// NewFactorization создаёт метод с кэшем; nil — свой FIFO-кэш на 1000 записей.
func NewFactorization(cache FactorCache) *Factorization {
	if cache == nil {
		cache = NewFactorCache(fifo.DefaultCapacity)
	}
	return &Factorization{cache: cache}
}

func (*Factorization) Name() domain.MethodName { return domain.MethodFactorization }

// FindUsefulFactorizations — пары (f, g), f ≤ g, f ≥ 2, по возрастанию оценки. Результат кэшируется по |n|.
func (m *Factorization) FindUsefulFactorizations(n int64) []domain.FactorPair {
	n = abs64(n)
	if pairs, ok := m.cache.Get(n); ok {
		return clonePairs(pairs)
	}
	v, _, _ := m.flight.Do(strconv.FormatInt(n, 10), func() (any, error) {
		if pairs, ok := m.cache.Get(n); ok {
			return pairs, nil
		}
		pairs := factorPairs(n)
		m.cache.Put(n, pairs)
		return pairs, nil
	})
	return clonePairs(v.([]domain.FactorPair))
}

func clonePairs(p []domain.FactorPair) []domain.FactorPair {
	return append([]domain.FactorPair(nil), p...)
}

// factorPairs делит пробно до √n и сортирует пары по оценке (устойчиво).
func factorPairs(n int64) []domain.FactorPair {
	var pairs []domain.FactorPair
	for f := int64(2); f*f <= n; f++ {
		if n%f == 0 {
			g := n / f
			pairs = append(pairs, domain.FactorPair{Factor1: f, Factor2: g, Score: scoreFactorPair(f, g)})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Score < pairs[j].Score })
	return pairs
}

// scoreFactorPair: бонусы за однозначные множители, степени двойки, кратность 5 и 10; штраф за число цифр.
func scoreFactorPair(f, g int64) float64 {
	score := 0.0
	for _, x := range []int64{f, g} {
		if x < 10 {
			score -= 2
		}
		if isPowerOfTwo(x) {
			score--
		}
		switch {
		case x%10 == 0:
			score -= 2
		case x%5 == 0:
			score--
		}
	}
	return score + float64(digits(f)+digits(g))
}

// factorPlan — какой множитель разложен и в каком порядке перемножать.
type factorPlan struct {
	factored int64
	pair     domain.FactorPair
	other    int64
	inner    int64 // множитель пары, который сначала умножаем на other
	outer    int64
	round    bool // inner × other — круглое число
}

// plan выбирает лучшую пару среди обоих операндов; при равной оценке — первый операнд.
func (m *Factorization) plan(a, b int64) (factorPlan, bool) {
	a, b = abs64(a), abs64(b)
	if IsTrivialMultiplication(a, b) {
		return factorPlan{}, false
	}
	var best factorPlan
	found := false
	for _, cand := range [][2]int64{{a, b}, {b, a}} {
		pairs := m.FindUsefulFactorizations(cand[0])
		if len(pairs) == 0 || pairs[0].Score > FactorScoreThreshold {
			continue
		}
		if !found || pairs[0].Score < best.pair.Score {
			best = factorPlan{factored: cand[0], pair: pairs[0], other: cand[1]}
			found = true
		}
	}
	if !found {
		return factorPlan{}, false
	}

	// сначала умножаем тот множитель, что даёт круглое число; иначе тот, что даёт меньшее
	f, g := best.pair.Factor1, best.pair.Factor2
	pf, pg := f*best.other, g*best.other
	switch {
	case pf%10 == 0 && pg%10 != 0:
		best.inner, best.outer, best.round = f, g, true
	case pg%10 == 0 && pf%10 != 0:
		best.inner, best.outer, best.round = g, f, true
	case pf <= pg:
		best.inner, best.outer, best.round = f, g, pf%10 == 0
	default:
		best.inner, best.outer, best.round = g, f, pg%10 == 0
	}
	return best, true
}

func (m *Factorization) IsApplicable(a, b int64) bool {
	_, ok := m.plan(a, b)
	return ok
}

// ComputeCost: оценка лучшей пары и длина второго множителя.
func (m *Factorization) ComputeCost(a, b int64) float64 {
	p, ok := m.plan(a, b)
	if !ok {
		return InapplicableCost
	}
	cost := 1.2 + 0.2*(p.pair.Score+3)
	if cost < 1.0 {
		cost = 1.0
	}
	if extra := digits(p.other) - 2; extra > 0 {
		cost += 0.1 * float64(extra)
	}
	return cost
}

func (m *Factorization) QualityScore(a, b int64) float64 {
	p, ok := m.plan(a, b)
	if !ok {
		return 0
	}
	if p.round {
		return 0.75
	}
	return 0.55
}

func (m *Factorization) GenerateSolution(num1, num2 int64) (*domain.Solution, error) {
	p, ok := m.plan(num1, num2)
	if !ok {
		return nil, notApplicable(m.Name(), num1, num2)
	}
	split := domain.Step{
		Expression:  fmt.Sprintf("%d × %d", p.pair.Factor1, p.pair.Factor2),
		Result:      p.factored,
		Explanation: fmt.Sprintf("Factor %d as %d × %d", p.factored, p.pair.Factor1, p.pair.Factor2),
		Kind:        domain.StepPartition,
	}
	explanation := fmt.Sprintf("Multiply %d × %d first", p.inner, p.other)
	if p.round {
		explanation += ": it lands on a round number"
	}
	inner := productStep(p.inner, p.other, 0, domain.MaxSubstepDepth, explanation)
	inner.Kind = domain.StepTerm
	outer := productStep(p.outer, inner.Result, 0, domain.MaxSubstepDepth,
		fmt.Sprintf("Multiply by the remaining factor %d", p.outer))
	outer.Kind = domain.StepCombine

	steps := []domain.Step{split, inner, outer}
	return finalize(m.Name(), num1, num2, m.Rationale(num1, num2), steps)
}

func (m *Factorization) Rationale(a, b int64) string {
	p, ok := m.plan(a, b)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Breaking %d into %d × %d lets you regroup so that %d × %d is easy, then finish with a single multiplication by %d.",
		p.factored, p.pair.Factor1, p.pair.Factor2, p.inner, p.other, p.outer)
}

func (*Factorization) Characteristic() string {
	return "regroups factors to reach round numbers"
}

func (*Factorization) GenerateStudyContent() domain.StudyContent {
	return studyContent(domain.MethodFactorization)
}
