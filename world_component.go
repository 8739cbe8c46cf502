package depot

import (
	"fmt"
	"reflect"
)

// component is the typed registration of T on a world.
type component[T any] struct {
	cid   ComponentID
	k     StorageKind
	t     reflect.Type
	arena Arena[T]
	state borrowState
}

func (c *component[T]) id() ComponentID       { return c.cid }
func (c *component[T]) kind() StorageKind     { return c.k }
func (c *component[T]) typ() reflect.Type     { return c.t }
func (c *component[T]) borrows() *borrowState { return &c.state }
func (c *component[T]) reserve(n int)         { c.arena.Reserve(n) }
func (c *component[T]) len() int              { return c.arena.Len() }

func (c *component[T]) drop(index uint32) {
	v, ok := c.arena.Remove(index)
	if !ok {
		return
	}
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(&v).(Dropper); ok {
		d.Drop()
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

func lookup[T any](w *World) *component[T] {
	t := typeOf[T]()
	i, ok := w.registry.GetIndex(t)
	if !ok {
		panic(UnregisteredComponentError{Type: t})
	}
	return w.storage(ComponentID(i)).(*component[T])
}

func newArena[T any](kind StorageKind) Arena[T] {
	switch kind {
	case Dense:
		return NewDenseArena[T](0)
	case Sparse:
		return NewSparseArena[T]()
	case Column:
		a, err := NewColumnArena[T]()
		if err != nil {
			panic(fmt.Errorf("failed to register %v: %w", typeOf[T](), err))
		}
		return a
	}
	panic(fmt.Errorf("unknown storage kind %d", kind))
}

// Register gives T the next unused component id and an empty arena of the
// requested kind.
func Register[T any](w *World, kind StorageKind) ComponentID {
	return RegisterArena(w, kind, newArena[T](kind))
}

// RegisterArena registers T with a caller-supplied arena. kind is reported
// back by StorageOf and has no other effect.
func RegisterArena[T any](w *World, kind StorageKind, arena Arena[T]) ComponentID {
	t := typeOf[T]()
	if _, ok := w.registry.GetIndex(t); ok {
		panic(DuplicateComponentError{Type: t})
	}
	if w.registry.Len() >= w.config.maxComponents {
		panic(ComponentCapacityError{Capacity: w.config.maxComponents})
	}
	c := &component[T]{
		cid:   ComponentID(w.registry.Len()),
		k:     kind,
		t:     t,
		arena: arena,
	}
	if _, err := w.registry.Register(t, c); err != nil {
		panic(fmt.Errorf("failed to register %v: %w", t, err))
	}
	c.arena.Reserve(w.reserved)
	w.logger.Debug("registered component", "type", t.String(), "id", c.cid, "storage", kind.String())
	return c.cid
}

// ComponentOf returns the id T was registered with.
func ComponentOf[T any](w *World) (ComponentID, bool) {
	i, ok := w.registry.GetIndex(typeOf[T]())
	if !ok {
		return 0, false
	}
	return ComponentID(i), true
}

// StorageOf returns the arena kind T was registered with.
func StorageOf[T any](w *World) (StorageKind, bool) {
	i, ok := w.registry.GetIndex(typeOf[T]())
	if !ok {
		return 0, false
	}
	return w.storage(ComponentID(i)).kind(), true
}

// Assign stores v as e's T. If e already held a T, the old value is handed
// back to the caller and not dropped.
func Assign[T any](w *World, e Entity, v T) (T, bool) {
	c := lookup[T](w)
	if !w.handles.IsAlive(e) {
		panic(DeadEntityError{Entity: e})
	}
	c.state.assertIdle(c.t)
	w.masks[e.index].Set(c.cid)
	return c.arena.Insert(e.index, v)
}

// AssignDefault stores the zero T on e.
func AssignDefault[T any](w *World, e Entity) {
	var zero T
	Assign(w, e, zero)
}

// Remove takes e's T out of the world. The caller owns the returned value.
func Remove[T any](w *World, e Entity) (T, bool) {
	c := lookup[T](w)
	if !w.handles.IsAlive(e) || !w.masks[e.index].Contains(c.cid) {
		var zero T
		return zero, false
	}
	c.state.assertIdle(c.t)
	w.masks[e.index].Unset(c.cid)
	return c.arena.Remove(e.index)
}

// Has reports whether e holds a T.
func Has[T any](w *World, e Entity) bool {
	c := lookup[T](w)
	if !w.handles.IsAlive(e) {
		return false
	}
	return w.masks[e.index].Contains(c.cid)
}

// Fetch returns a copy of e's T.
func Fetch[T any](w *World, e Entity) (T, bool) {
	c := lookup[T](w)
	c.state.acquireRead(c.t)
	defer c.state.releaseRead()
	if !w.handles.IsAlive(e) {
		var zero T
		return zero, false
	}
	return c.arena.Get(e.index)
}

// FetchMut returns a pointer to e's T together with the write guard that
// protects it. The arena stays exclusively borrowed until the guard is
// released. When e has no T nothing stays borrowed and the guard is nil.
func FetchMut[T any](w *World, e Entity) (*Writer[T], *T, bool) {
	g := WriteArena[T](w)
	p, ok := g.GetMut(e)
	if !ok {
		g.Release()
		return nil, nil, false
	}
	return g, p, true
}

// ReadArena takes a shared borrow of T's arena.
func ReadArena[T any](w *World) *Reader[T] {
	c := lookup[T](w)
	c.state.acquireRead(c.t)
	return &Reader[T]{world: w, arena: c.arena, state: &c.state}
}

// WriteArena takes the exclusive borrow of T's arena.
func WriteArena[T any](w *World) *Writer[T] {
	c := lookup[T](w)
	c.state.acquireWrite(c.t)
	return &Writer[T]{world: w, arena: c.arena, state: &c.state}
}

// Count returns how many entities hold a T.
func Count[T any](w *World) int {
	return lookup[T](w).arena.Len()
}
