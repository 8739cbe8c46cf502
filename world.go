package depot

import (
	"iter"
	"log/slog"
	"reflect"
)

// World owns every entity and every component value. Handles given out by
// Create are weak references: they look data up and never keep it alive.
//
// Register, Create and Free need exclusive access to the world and must not
// run while a view or guard is outstanding. Views and their cursors may be
// used from many goroutines.
type World struct {
	handles  *HandlePool
	masks    []Bitmask
	registry *SimpleCache[reflect.Type, storage]
	reserved int
	config   config
	logger   *slog.Logger
}

func newWorld(opts ...Option) *World {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &World{
		handles:  newHandlePool(cfg.capacity, cfg.logger),
		masks:    make([]Bitmask, 0, cfg.capacity),
		registry: NewCache[reflect.Type, storage](cfg.maxComponents),
		reserved: cfg.capacity,
		config:   cfg,
		logger:   cfg.logger,
	}
}

// Create returns a new live entity with no components. Growing the world
// may move arena storage, so Create panics with a BorrowConflictError while
// any arena is borrowed.
func (w *World) Create() Entity {
	for _, s := range w.registry.Items() {
		s.borrows().assertIdle(s.typ())
	}
	e := w.handles.Create()
	if n := int(e.index) + 1; n > len(w.masks) {
		w.masks = append(w.masks, make([]Bitmask, n-len(w.masks))...)
		w.reserve(n)
	}
	return e
}

// reserve keeps arena backing capacity in step with the handle pool,
// doubling to amortize growth.
func (w *World) reserve(n int) {
	if n <= w.reserved {
		return
	}
	w.reserved = max(n, 2*w.reserved)
	for _, s := range w.registry.Items() {
		s.reserve(w.reserved)
	}
}

// Free drops every component e holds and recycles its handle. Freeing a
// handle that is not alive does nothing and returns false.
func (w *World) Free(e Entity) bool {
	if !w.handles.IsAlive(e) {
		return false
	}
	m := &w.masks[e.index]
	for id := range m.Bits() {
		s := w.storage(id)
		s.borrows().assertIdle(s.typ())
	}
	for id := range m.Bits() {
		w.storage(id).drop(e.index)
	}
	m.Reset()
	return w.handles.Free(e)
}

// IsAlive reports whether e still refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	return w.handles.IsAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.handles.Len()
}

// Retired returns how many entity slots were retired after exhausting their
// version counter.
func (w *World) Retired() int {
	return w.handles.Retired()
}

// Entities ranges over live entities in ascending index order.
func (w *World) Entities() iter.Seq[Entity] {
	return w.handles.Iter().All()
}

// Mask returns the presence mask of e.
func (w *World) Mask(e Entity) (Bitmask, bool) {
	if !w.handles.IsAlive(e) {
		return Bitmask{}, false
	}
	return w.masks[e.index], true
}

// Components lists the component ids e holds.
func (w *World) Components(e Entity) []ComponentID {
	m, ok := w.Mask(e)
	if !ok {
		return nil
	}
	ids := make([]ComponentID, 0, 4)
	for id := range m.Bits() {
		ids = append(ids, id)
	}
	return ids
}

func (w *World) storage(id ComponentID) storage {
	return *w.registry.GetItem(int(id))
}

// ComponentCount returns the number of registered component types.
func (w *World) ComponentCount() int {
	return w.registry.Len()
}
