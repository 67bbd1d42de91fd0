package fifo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_EvictsOldestInserted(t *testing.T) {
	c := New[int, string](3)
	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c")

	// чтение не спасает ключ от вытеснения — это FIFO, а не LRU
	_, ok := c.Get(1)
	require.True(t, ok)

	c.Put(4, "d")

	_, ok = c.Get(1)
	assert.False(t, ok, "самый старый ключ должен быть вытеснен")
	assert.Equal(t, []int{2, 3, 4}, c.Keys())
	assert.Equal(t, int64(1), c.Evictions())
}

func TestCache_OverwriteKeepsPosition(t *testing.T) {
	c := New[string, int](2)
	c.Put("x", 1)
	c.Put("y", 2)
	c.Put("x", 10)

	v, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	c.Put("z", 3)
	_, ok = c.Get("x")
	assert.False(t, ok, "перезапись не переносит ключ в конец очереди")
	assert.Equal(t, 2, c.Len())
}

func TestCache_DefaultCapacity(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < DefaultCapacity+5; i++ {
		c.Put(i, i)
	}
	assert.Equal(t, DefaultCapacity, c.Len())
	assert.Equal(t, int64(5), c.Evictions())
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](50)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				c.Put(g*1000+i, i)
				c.Get(i)
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
	assert.Len(t, c.Keys(), 50)
}
