package depot

import (
	"iter"
	"math/bits"
)

// DynamicBitmask is a bit vector that grows its backing words on demand
// instead of imposing a hard cap. Reads and unsets past the end report the
// bit as absent.
type DynamicBitmask struct {
	words []uint64
}

// NewDynamicBitmask returns a mask with room for at least n bits.
func NewDynamicBitmask(n int) DynamicBitmask {
	return DynamicBitmask{words: make([]uint64, 0, (n+63)/64)}
}

// Set marks bit, growing the mask if needed.
func (m *DynamicBitmask) Set(bit uint32) {
	word, pos := bit/64, bit%64
	for len(m.words) <= int(word) {
		m.words = append(m.words, 0)
	}
	m.words[word] |= 1 << pos
}

// Unset clears bit. Bits past the end are already clear.
func (m *DynamicBitmask) Unset(bit uint32) {
	word, pos := bit/64, bit%64
	if len(m.words) <= int(word) {
		return
	}
	m.words[word] &^= 1 << pos
}

// Contains reports whether bit is set.
func (m DynamicBitmask) Contains(bit uint32) bool {
	word, pos := bit/64, bit%64
	if len(m.words) <= int(word) {
		return false
	}
	return m.words[word]&(1<<pos) != 0
}

// Reset clears every bit but keeps the backing array.
func (m *DynamicBitmask) Reset() {
	clear(m.words)
}

// Intersect returns the bitwise AND of m and other.
func (m DynamicBitmask) Intersect(other DynamicBitmask) DynamicBitmask {
	n := min(len(m.words), len(other.words))
	out := DynamicBitmask{words: make([]uint64, n)}
	for i := 0; i < n; i++ {
		out.words[i] = m.words[i] & other.words[i]
	}
	return out
}

// ContainsAll reports whether every bit of sub is also set in m.
func (m DynamicBitmask) ContainsAll(sub DynamicBitmask) bool {
	for i, w := range sub.words {
		if w == 0 {
			continue
		}
		if i >= len(m.words) || m.words[i]&w != w {
			return false
		}
	}
	return true
}

// Equal compares set bits only; trailing zero words do not matter.
func (m DynamicBitmask) Equal(other DynamicBitmask) bool {
	a, b := m.words, other.words
	if len(a) < len(b) {
		a, b = b, a
	}
	for i := range a {
		var w uint64
		if i < len(b) {
			w = b[i]
		}
		if a[i] != w {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (m DynamicBitmask) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Width is the number of addressable bits before the mask has to grow.
func (m DynamicBitmask) Width() int {
	return len(m.words) * 64
}

// NextSet returns the first set bit in [from, to).
func (m DynamicBitmask) NextSet(from, to uint32) (uint32, bool) {
	if limit := uint32(len(m.words) * 64); to > limit {
		to = limit
	}
	for from < to {
		word := m.words[from/64] >> (from % 64)
		if word == 0 {
			from = (from/64 + 1) * 64
			continue
		}
		bit := from + uint32(bits.TrailingZeros64(word))
		if bit >= to {
			return 0, false
		}
		return bit, true
	}
	return 0, false
}

// Bits yields the set bits in ascending order.
func (m DynamicBitmask) Bits() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i, word := range m.words {
			for word != 0 {
				pos := bits.TrailingZeros64(word)
				if !yield(uint32(i*64 + pos)) {
					return
				}
				word &^= 1 << pos
			}
		}
	}
}
