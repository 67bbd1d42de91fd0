package methods

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// countingCache считает обращения, чтобы проверить ленивое заполнение.
type countingCache struct {
	mu    sync.Mutex
	inner FactorCache
	puts  int
}

func (c *countingCache) Get(n int64) ([]domain.FactorPair, bool) { return c.inner.Get(n) }

func (c *countingCache) Put(n int64, pairs []domain.FactorPair) {
	c.mu.Lock()
	c.puts++
	c.mu.Unlock()
	c.inner.Put(n, pairs)
}

func TestFindUsefulFactorizations_SortedByScore(t *testing.T) {
	f := NewFactorization(nil)
	pairs := f.FindUsefulFactorizations(24)
	require.Len(t, pairs, 3)

	// (3,8) и (4,6) по -3, (2,12) — 0; при равенстве сохраняется порядок пробного деления
	assert.Equal(t, domain.FactorPair{Factor1: 3, Factor2: 8, Score: -3}, pairs[0])
	assert.Equal(t, domain.FactorPair{Factor1: 4, Factor2: 6, Score: -3}, pairs[1])
	assert.Equal(t, domain.FactorPair{Factor1: 2, Factor2: 12, Score: 0}, pairs[2])

	for _, p := range pairs {
		assert.Equal(t, int64(24), p.Factor1*p.Factor2)
	}
}

func TestFindUsefulFactorizations_Prime(t *testing.T) {
	f := NewFactorization(nil)
	assert.Empty(t, f.FindUsefulFactorizations(97))
}

func TestFindUsefulFactorizations_CachedByAbsoluteValue(t *testing.T) {
	cache := &countingCache{inner: NewFactorCache(10)}
	f := NewFactorization(cache)

	first := f.FindUsefulFactorizations(36)
	second := f.FindUsefulFactorizations(-36)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.puts)

	// вызывающий не может испортить кэш, меняя результат
	first[0].Score = 100
	third := f.FindUsefulFactorizations(36)
	assert.NotEqual(t, 100.0, third[0].Score)
}

func TestFindUsefulFactorizations_FIFOEviction(t *testing.T) {
	cache := NewFactorCache(2)
	f := NewFactorization(cache)

	f.FindUsefulFactorizations(12)
	f.FindUsefulFactorizations(18)
	f.FindUsefulFactorizations(12) // чтение не продлевает жизнь
	f.FindUsefulFactorizations(20)

	_, ok := cache.Get(12)
	assert.False(t, ok, "12 вставлен первым и должен быть вытеснен")
	_, ok = cache.Get(18)
	assert.True(t, ok)
	_, ok = cache.Get(20)
	assert.True(t, ok)
}

func TestFindUsefulFactorizations_Concurrent(t *testing.T) {
	cache := &countingCache{inner: NewFactorCache(100)}
	f := NewFactorization(cache)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := int64(10); n < 60; n++ {
				f.FindUsefulFactorizations(n)
			}
		}()
	}
	wg.Wait()

	for n := int64(10); n < 60; n++ {
		_, ok := cache.Get(n)
		assert.True(t, ok, "n=%d", n)
	}
}

func TestScoreFactorPair(t *testing.T) {
	assert.Equal(t, -3.0, scoreFactorPair(5, 7))
	assert.Equal(t, 0.0, scoreFactorPair(2, 49))
	assert.Equal(t, 1.0, scoreFactorPair(7, 14))
	assert.Equal(t, -4.0, scoreFactorPair(5, 8))
}

func TestFactorization_PrefersRoundIntermediate(t *testing.T) {
	f := NewFactorization(nil)
	p, ok := f.plan(24, 35)
	require.True(t, ok)
	assert.Equal(t, int64(24), p.factored)
	assert.Equal(t, int64(8), p.inner)
	assert.Equal(t, int64(3), p.outer)
	assert.True(t, p.round)
	assert.Equal(t, 0.75, f.QualityScore(24, 35))
}
