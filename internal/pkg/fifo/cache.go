// Package fifo — ограниченный кэш с вытеснением в порядке вставки (не LRU: чтение порядок не меняет).
package fifo

import (
	"container/list"
	"sync"
)

// DefaultCapacity — ёмкость по умолчанию.
const DefaultCapacity = 1000

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache — потокобезопасный FIFO-кэш. Get и Put под одним мьютексом, чтобы учёт порядка не разъезжался с map.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List

	evictions int64
}

// New создаёт кэш; capacity <= 0 означает DefaultCapacity.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get возвращает значение по ключу.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Put сохраняет значение. Повторная запись существующего ключа обновляет значение, но не позицию в очереди.
// Когда кэш полон, выбрасывается самый старый вставленный ключ.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry[K, V]).key)
		c.evictions++
	}
	c.items[key] = c.order.PushBack(&entry[K, V]{key: key, value: value})
}

// Len — текущее число записей.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Evictions — сколько записей вытеснено с момента создания.
func (c *Cache[K, V]) Evictions() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictions
}

// Keys возвращает ключи от старого к новому.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[K, V]).key)
	}
	return keys
}
