// Package generator подбирает задачи под конкретный метод: пары чисел из области его применимости.
package generator

import (
	"math/rand/v2"
	"sync"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/methods"
)

// DefaultMaxAttempts — сколько кандидатов проверяем, прежде чем отдать случайную двузначную пару.
const DefaultMaxAttempts = 20

// Generator выдаёт пары чисел. Безопасен для конкурентного использования.
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	registry    []methods.Method
	maxAttempts int
}

// New создаёт генератор с заданным зерном; одинаковое зерно — одинаковая последовательность задач.
func New(seed uint64, registry []methods.Method) *Generator {
	return &Generator{
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		registry:    registry,
		maxAttempts: DefaultMaxAttempts,
	}
}

// NewRandom — генератор со случайным зерном.
func NewRandom(registry []methods.Method) *Generator {
	return New(rand.Uint64(), registry)
}

// Generate подбирает задачу под метод. Пустое имя — метод выбирается случайно.
// Кандидат перепроверяется IsApplicable; после DefaultMaxAttempts неудач возвращается случайная двузначная пара.
func (g *Generator) Generate(name domain.MethodName) (domain.Problem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if name == "" {
		name = g.registry[g.rng.IntN(len(g.registry))].Name()
	}
	m, err := methods.Lookup(g.registry, name)
	if err != nil {
		return domain.Problem{}, err
	}
	for i := 0; i < g.maxAttempts; i++ {
		a, b := g.candidate(name)
		if m.IsApplicable(a, b) {
			return domain.Problem{Num1: a, Num2: b, Method: name}, nil
		}
	}
	a, b := g.twoDigit(), g.twoDigit()
	return domain.Problem{Num1: a, Num2: b, Method: name}, nil
}

// between — равномерно в [lo, hi].
func (g *Generator) between(lo, hi int64) int64 {
	return lo + g.rng.Int64N(hi-lo+1)
}

// twoDigit — двузначное число, не кратное 10.
func (g *Generator) twoDigit() int64 {
	for {
		if n := g.between(11, 99); n%10 != 0 {
			return n
		}
	}
}

func (g *Generator) candidate(name domain.MethodName) (int64, int64) {
	switch name {
	case domain.MethodDifferenceOfSquares:
		mid := 10 * g.between(2, 9)
		d := g.between(1, 5)
		return mid - d, mid + d
	case domain.MethodNearPowerOfTen:
		power := []int64{10, 100, 100, 1000}[g.rng.IntN(4)]
		limit := power / 10
		d := g.between(1, limit)
		if g.rng.IntN(2) == 0 {
			d = -d
		}
		return power + d, g.twoDigit()
	case domain.MethodFactorization:
		f := []int64{2, 4, 5, 8}[g.rng.IntN(4)]
		return f * g.between(3, 12), g.twoDigit()
	case domain.MethodSquaring:
		n := g.twoDigit()
		return n, n
	case domain.MethodNear100:
		return 100 + g.between(-methods.Near100Window, methods.Near100Window),
			100 + g.between(-methods.Near100Window, methods.Near100Window)
	case domain.MethodSumToTen:
		t := g.between(1, 9)
		x := g.between(1, 9)
		return 10*t + x, 10*t + 10 - x
	case domain.MethodSquaringEndingIn5:
		n := 10*g.between(1, 9) + 5
		return n, n
	default:
		return g.twoDigit(), g.twoDigit()
	}
}
