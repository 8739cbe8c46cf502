package depot

import (
	"fmt"
	"iter"
)

var _ Cache[string, any] = &SimpleCache[string, any]{}

// Cache assigns dense, stable indices to keyed items up to a fixed capacity.
type Cache[K comparable, T any] interface {
	GetIndex(key K) (int, bool)
	GetItem(index int) *T
	Register(key K, item T) (int, error)
	Len() int
	Items() iter.Seq2[int, T]
	Clear()
}

// SimpleCache is a slice-backed Cache. Indices are handed out in
// registration order starting at 0.
type SimpleCache[K comparable, T any] struct {
	items       []T
	itemIndices map[K]int
	maxCapacity int
}

// NewCache returns an empty cache that accepts at most maxCapacity items.
func NewCache[K comparable, T any](maxCapacity int) *SimpleCache[K, T] {
	return &SimpleCache[K, T]{
		items:       make([]T, 0, min(maxCapacity, 16)),
		itemIndices: make(map[K]int),
		maxCapacity: maxCapacity,
	}
}

func (c *SimpleCache[K, T]) GetIndex(key K) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *SimpleCache[K, T]) GetItem(index int) *T {
	return &c.items[index]
}

func (c *SimpleCache[K, T]) Register(key K, item T) (int, error) {
	if _, ok := c.itemIndices[key]; ok {
		return -1, fmt.Errorf("key %v already registered", key)
	}
	if len(c.items) >= c.maxCapacity {
		return -1, fmt.Errorf("cache at maximum capacity (%d)", c.maxCapacity)
	}
	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return idx, nil
}

func (c *SimpleCache[K, T]) Len() int {
	return len(c.items)
}

// Items yields every item with its index, in registration order.
func (c *SimpleCache[K, T]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (c *SimpleCache[K, T]) Clear() {
	clear(c.items)
	c.items = c.items[:0]
	clear(c.itemIndices)
}
