package depot

import (
	"reflect"
	"sync/atomic"
)

// borrowState counts outstanding guards on one arena: n > 0 shared readers,
// -1 a single writer, 0 free.
type borrowState struct {
	n atomic.Int32
}

func (b *borrowState) acquireRead(t reflect.Type) {
	for {
		n := b.n.Load()
		if n < 0 {
			panic(BorrowConflictError{Type: t, Borrowed: true})
		}
		if b.n.CompareAndSwap(n, n+1) {
			return
		}
	}
}

func (b *borrowState) releaseRead() {
	b.n.Add(-1)
}

func (b *borrowState) acquireWrite(t reflect.Type) {
	if b.n.CompareAndSwap(0, -1) {
		return
	}
	n := b.n.Load()
	panic(BorrowConflictError{Type: t, Mutable: true, Borrowed: n < 0, Readers: int(max(n, 0))})
}

func (b *borrowState) releaseWrite() {
	b.n.Store(0)
}

// assertIdle guards structural changes: they need the arena unborrowed.
func (b *borrowState) assertIdle(t reflect.Type) {
	if n := b.n.Load(); n != 0 {
		panic(BorrowConflictError{Type: t, Mutable: true, Borrowed: n < 0, Readers: int(max(n, 0))})
	}
}

// Reader is a shared borrow of one component arena. Any number of readers
// may coexist; none may coexist with a Writer.
type Reader[T any] struct {
	world    *World
	arena    Arena[T]
	state    *borrowState
	released atomic.Bool
}

// Get returns a copy of e's component.
func (r *Reader[T]) Get(e Entity) (T, bool) {
	if !r.world.handles.IsAlive(e) {
		var zero T
		return zero, false
	}
	return r.arena.Get(e.index)
}

// GetFromCursor returns the component of the entity c stopped on.
func (r *Reader[T]) GetFromCursor(c *Cursor) (T, bool) {
	return r.Get(c.current)
}

// Has reports whether e holds the component.
func (r *Reader[T]) Has(e Entity) bool {
	_, ok := r.Get(e)
	return ok
}

// Release ends the borrow. Calling it more than once is harmless.
func (r *Reader[T]) Release() {
	if r.released.CompareAndSwap(false, true) {
		r.state.releaseRead()
	}
}

// Writer is the exclusive borrow of one component arena. Cursors split from
// a view may use one Writer from many goroutines at once, provided each
// goroutine only touches the entities its cursor yields.
type Writer[T any] struct {
	world    *World
	arena    Arena[T]
	state    *borrowState
	released atomic.Bool
}

// Get returns a copy of e's component.
func (w *Writer[T]) Get(e Entity) (T, bool) {
	if !w.world.handles.IsAlive(e) {
		var zero T
		return zero, false
	}
	return w.arena.Get(e.index)
}

// GetMut returns a pointer to e's component, valid until the guard is
// released.
func (w *Writer[T]) GetMut(e Entity) (*T, bool) {
	if !w.world.handles.IsAlive(e) {
		return nil, false
	}
	return w.arena.GetMut(e.index)
}

// GetFromCursor returns a pointer to the component of the entity c stopped
// on.
func (w *Writer[T]) GetFromCursor(c *Cursor) (*T, bool) {
	return w.GetMut(c.current)
}

// Release ends the borrow. Calling it more than once is harmless.
func (w *Writer[T]) Release() {
	if w.released.CompareAndSwap(false, true) {
		w.state.releaseWrite()
	}
}
