package depot

import (
	"iter"
	"log/slog"
	"math"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// HandlePool issues and recycles generational handles.
//
// Slot versions start at 1, so the nil handle is never issued. Freeing a
// handle bumps its slot version, which invalidates every copy of it. A slot
// whose version cannot be bumped without wrapping is retired: it stays dead
// and never returns to the free list.
type HandlePool struct {
	versions []uint32
	free     []uint32
	alive    DynamicBitmask
	retired  int
	logger   *slog.Logger
}

func newHandlePool(capacity int, logger *slog.Logger) *HandlePool {
	return &HandlePool{
		versions: make([]uint32, 0, capacity),
		alive:    NewDynamicBitmask(capacity),
		logger:   logger,
	}
}

// Create returns a live handle, reusing the most recently freed index when
// one is available.
func (p *HandlePool) Create() Handle {
	if n := len(p.free); n > 0 {
		index := p.free[n-1]
		p.free = p.free[:n-1]
		p.alive.Set(index)
		return Handle{index: index, version: p.versions[index]}
	}
	index := uint32(len(p.versions))
	p.versions = append(p.versions, 1)
	p.alive.Set(index)
	return Handle{index: index, version: 1}
}

// IsAlive reports whether h is the current occupant of its slot.
func (p *HandlePool) IsAlive(h Handle) bool {
	return h.index < uint32(len(p.versions)) &&
		p.versions[h.index] == h.version &&
		p.alive.Contains(h.index)
}

// Free releases h. It returns false, and does nothing, when h is not alive.
func (p *HandlePool) Free(h Handle) bool {
	if !p.IsAlive(h) {
		return false
	}
	p.alive.Unset(h.index)
	if p.versions[h.index] == math.MaxUint32 {
		p.retired++
		p.logger.Warn("handle slot retired", "index", h.index, "retired", p.retired)
		return true
	}
	p.versions[h.index]++
	p.free = append(p.free, h.index)
	return true
}

// Len returns the number of live handles.
func (p *HandlePool) Len() int {
	return len(p.versions) - len(p.free) - p.retired
}

// Cap returns one past the highest index ever issued.
func (p *HandlePool) Cap() int {
	return len(p.versions)
}

// Retired returns the number of slots taken out of circulation because
// their version counter was exhausted.
func (p *HandlePool) Retired() int {
	return p.retired
}

// Iter returns the stream of live handles in ascending index order.
func (p *HandlePool) Iter() *HandleIter {
	return p.Range(0, uint32(len(p.versions)))
}

// Range returns the live handles whose index falls in [start, end).
func (p *HandlePool) Range(start, end uint32) *HandleIter {
	end = min(end, uint32(len(p.versions)))
	start = min(start, end)
	return &HandleIter{pool: p, next: start, end: end}
}

// HandleIter walks a contiguous index range of a pool and yields the live
// handles in it. Halves produced by Split and SplitWith cover disjoint
// ranges and may be consumed from different goroutines as long as the
// pool itself is not mutated.
type HandleIter struct {
	pool *HandlePool
	next uint32
	end  uint32
}

// Next returns the next live handle.
func (it *HandleIter) Next() (Handle, bool) {
	index, ok := it.pool.alive.NextSet(it.next, it.end)
	if !ok {
		it.next = it.end
		return Handle{}, false
	}
	it.next = index + 1
	return Handle{index: index, version: it.pool.versions[index]}, true
}

// Bounds returns the index range still to be visited.
func (it *HandleIter) Bounds() (start, end uint32) {
	return it.next, it.end
}

// Split halves the remaining index range at its midpoint.
func (it *HandleIter) Split() (*HandleIter, *HandleIter) {
	mid := it.next + (it.end-it.next)/2
	return &HandleIter{pool: it.pool, next: it.next, end: mid},
		&HandleIter{pool: it.pool, next: mid, end: it.end}
}

// SplitWith gives the first n live handles to the left half and the rest to
// the right half.
func (it *HandleIter) SplitWith(n int) (*HandleIter, *HandleIter) {
	at := it.next
	for ; n > 0; n-- {
		index, ok := it.pool.alive.NextSet(at, it.end)
		if !ok {
			at = it.end
			break
		}
		at = index + 1
	}
	return &HandleIter{pool: it.pool, next: it.next, end: at},
		&HandleIter{pool: it.pool, next: at, end: it.end}
}

// All ranges over the remaining handles, consuming the iterator.
func (it *HandleIter) All() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for {
			h, ok := it.Next()
			if !ok || !yield(h) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *HandleIter) Collect() []Handle {
	return iter_util.Collect(it.All())
}
