package depot

import (
	"iter"
	"math/bits"

	"github.com/TheBitDrifter/mask"
)

// MaskCapacity is the number of component types a fixed Bitmask can track.
// It follows the width mask was built with (see its m256/m512/m1024 tags).
const MaskCapacity = int(mask.MaxBits)

// ComponentID is the bit a registered component type occupies in a Bitmask.
type ComponentID uint32

// Bitmask is the fixed-width presence set kept per entity, a thin wrapper
// over mask.Mask.
type Bitmask struct {
	m mask.Mask
}

// NewBitmask returns a mask with the given bits set.
func NewBitmask(ids ...ComponentID) Bitmask {
	var b Bitmask
	for _, id := range ids {
		b.Set(id)
	}
	return b
}

// Set marks id. Ids past MaskCapacity are a configuration error.
func (b *Bitmask) Set(id ComponentID) {
	if int(id) >= MaskCapacity {
		panic(ComponentCapacityError{Capacity: MaskCapacity})
	}
	b.m.Mark(uint32(id))
}

// Unset clears id.
func (b *Bitmask) Unset(id ComponentID) {
	if int(id) >= MaskCapacity {
		return
	}
	b.m.Unmark(uint32(id))
}

// Contains reports whether id is set.
func (b Bitmask) Contains(id ComponentID) bool {
	if int(id) >= MaskCapacity {
		return false
	}
	return b.m.Contains(uint32(id))
}

// Reset clears every bit.
func (b *Bitmask) Reset() {
	*b = Bitmask{}
}

// ContainsAll reports whether b is a superset of sub.
func (b Bitmask) ContainsAll(sub Bitmask) bool {
	if sub.IsEmpty() {
		return true
	}
	return b.m.ContainsAll(sub.m)
}

// ContainsAny reports whether b and other share at least one bit.
func (b Bitmask) ContainsAny(other Bitmask) bool {
	if other.IsEmpty() {
		return false
	}
	return b.m.ContainsAny(other.m)
}

// Intersect returns the bitwise AND of b and other.
func (b Bitmask) Intersect(other Bitmask) Bitmask {
	var out Bitmask
	for i := range b.m {
		out.m[i] = b.m[i] & other.m[i]
	}
	return out
}

// Equal reports whether b and other hold the same bits.
func (b Bitmask) Equal(other Bitmask) bool {
	return b.m == other.m
}

// IsEmpty reports whether no bit is set.
func (b Bitmask) IsEmpty() bool {
	return b.m == mask.Mask{}
}

// Count returns the number of set bits.
func (b Bitmask) Count() int {
	n := 0
	for _, word := range b.m {
		n += bits.OnesCount64(word)
	}
	return n
}

// Bits yields the set ids in ascending order.
func (b Bitmask) Bits() iter.Seq[ComponentID] {
	return func(yield func(ComponentID) bool) {
		for i, word := range b.m {
			for word != 0 {
				pos := bits.TrailingZeros64(word)
				if !yield(ComponentID(i*64 + pos)) {
					return
				}
				word &^= 1 << pos
			}
		}
	}
}
