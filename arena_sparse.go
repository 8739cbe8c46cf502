package depot

var _ Arena[int] = &SparseArena[int]{}

// SparseArena keeps values in a hashed index map. Memory tracks occupancy
// rather than the highest index.
type SparseArena[T any] struct {
	values map[uint32]*T
}

func NewSparseArena[T any]() *SparseArena[T] {
	return &SparseArena[T]{values: make(map[uint32]*T)}
}

// Insert overwrites in place so pointers from GetMut stay valid.
func (a *SparseArena[T]) Insert(index uint32, value T) (T, bool) {
	if p, ok := a.values[index]; ok {
		prev := *p
		*p = value
		return prev, true
	}
	a.values[index] = &value
	var zero T
	return zero, false
}

func (a *SparseArena[T]) Remove(index uint32) (T, bool) {
	p, ok := a.values[index]
	if !ok {
		var zero T
		return zero, false
	}
	delete(a.values, index)
	return *p, true
}

func (a *SparseArena[T]) Get(index uint32) (T, bool) {
	if p, ok := a.values[index]; ok {
		return *p, true
	}
	var zero T
	return zero, false
}

func (a *SparseArena[T]) GetMut(index uint32) (*T, bool) {
	p, ok := a.values[index]
	return p, ok
}

func (a *SparseArena[T]) Len() int {
	return len(a.values)
}

// Reserve is a no-op: the map grows with occupancy.
func (a *SparseArena[T]) Reserve(int) {}
