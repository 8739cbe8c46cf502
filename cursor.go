package depot

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// Cursor walks a contiguous index range of the live-entity stream and stops
// on entities matching its view. Split and SplitWith hand out halves over
// disjoint ranges, so the halves may run on different goroutines.
type Cursor struct {
	world   *World
	include Bitmask
	exclude Bitmask
	filter  QueryNode
	handles *HandleIter
	current Entity
}

func newCursor(w *World, include, exclude Bitmask, filter QueryNode, handles *HandleIter) *Cursor {
	return &Cursor{
		world:   w,
		include: include,
		exclude: exclude,
		filter:  filter,
		handles: handles,
	}
}

func (c *Cursor) matches(index uint32) bool {
	m := c.world.masks[index]
	if !m.ContainsAll(c.include) {
		return false
	}
	if !c.exclude.IsEmpty() && m.ContainsAny(c.exclude) {
		return false
	}
	return c.filter == nil || c.filter.Evaluate(m)
}

func (c *Cursor) derive(handles *HandleIter) *Cursor {
	return newCursor(c.world, c.include, c.exclude, c.filter, handles)
}

// Next advances to the next matching entity.
func (c *Cursor) Next() bool {
	for {
		h, ok := c.handles.Next()
		if !ok {
			c.current = NilHandle
			return false
		}
		if c.matches(h.index) {
			c.current = h
			return true
		}
	}
}

// Entity returns the entity Next stopped on.
func (c *Cursor) Entity() Entity {
	return c.current
}

// Bounds returns the index range still to be visited.
func (c *Cursor) Bounds() (start, end uint32) {
	return c.handles.Bounds()
}

// Remaining counts the matches left without consuming them.
func (c *Cursor) Remaining() int {
	scan := *c.handles
	n := 0
	for {
		h, ok := scan.Next()
		if !ok {
			return n
		}
		if c.matches(h.index) {
			n++
		}
	}
}

// Split halves the remaining index range at its midpoint. The halves may
// hold very different numbers of matches.
func (c *Cursor) Split() (*Cursor, *Cursor) {
	l, r := c.handles.Split()
	return c.derive(l), c.derive(r)
}

// SplitWith gives the first n matching entities to the left half and the
// rest to the right half.
func (c *Cursor) SplitWith(n int) (*Cursor, *Cursor) {
	start, end := c.handles.Bounds()
	at := start
	scan := *c.handles
	for n > 0 {
		h, ok := scan.Next()
		if !ok {
			at = end
			break
		}
		at = h.index + 1
		if c.matches(h.index) {
			n--
		}
	}
	pool := c.handles.pool
	return c.derive(&HandleIter{pool: pool, next: start, end: at}),
		c.derive(&HandleIter{pool: pool, next: at, end: end})
}

// Partition splits c recursively into at most parts cursors over disjoint
// ranges. Ranges of a single index are not split further.
func (c *Cursor) Partition(parts int) []*Cursor {
	start, end := c.handles.Bounds()
	if parts <= 1 || end-start <= 1 {
		return []*Cursor{c}
	}
	l, r := c.Split()
	half := parts / 2
	return append(l.Partition(parts-half), r.Partition(half)...)
}

// All ranges over the remaining matches, consuming the cursor.
func (c *Cursor) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for c.Next() {
			if !yield(c.current) {
				return
			}
		}
	}
}

// Collect drains the cursor into a slice.
func (c *Cursor) Collect() []Entity {
	return iter_util.Collect(c.All())
}
