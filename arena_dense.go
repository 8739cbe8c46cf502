package depot

import "slices"

var _ Arena[int] = &DenseArena[int]{}

type denseSlot[T any] struct {
	value T
	ok    bool
}

// DenseArena is an index-addressed slice of slots. Access is O(1) and memory
// is proportional to the highest index stored, whatever the occupancy.
type DenseArena[T any] struct {
	slots []denseSlot[T]
	count int
}

// NewDenseArena returns an empty arena with room for capacity indices.
func NewDenseArena[T any](capacity int) *DenseArena[T] {
	return &DenseArena[T]{slots: make([]denseSlot[T], 0, capacity)}
}

func (a *DenseArena[T]) Insert(index uint32, value T) (T, bool) {
	if n := int(index) + 1; n > len(a.slots) {
		a.slots = append(a.slots, make([]denseSlot[T], n-len(a.slots))...)
	}
	slot := &a.slots[index]
	prev, had := slot.value, slot.ok
	slot.value, slot.ok = value, true
	if !had {
		a.count++
	}
	return prev, had
}

func (a *DenseArena[T]) Remove(index uint32) (T, bool) {
	var zero T
	if int(index) >= len(a.slots) || !a.slots[index].ok {
		return zero, false
	}
	value := a.slots[index].value
	a.slots[index] = denseSlot[T]{}
	a.count--
	return value, true
}

func (a *DenseArena[T]) Get(index uint32) (T, bool) {
	if int(index) >= len(a.slots) || !a.slots[index].ok {
		var zero T
		return zero, false
	}
	return a.slots[index].value, true
}

func (a *DenseArena[T]) GetMut(index uint32) (*T, bool) {
	if int(index) >= len(a.slots) || !a.slots[index].ok {
		return nil, false
	}
	return &a.slots[index].value, true
}

func (a *DenseArena[T]) Len() int {
	return a.count
}

func (a *DenseArena[T]) Reserve(n int) {
	if n > len(a.slots) {
		a.slots = slices.Grow(a.slots, n-len(a.slots))
	}
}
