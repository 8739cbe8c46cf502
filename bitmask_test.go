package depot

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmaskSetUnset(t *testing.T) {
	var m Bitmask
	assert.True(t, m.IsEmpty())

	top := ComponentID(MaskCapacity - 1)
	m.Set(0)
	m.Set(5)
	m.Set(top)

	assert.True(t, m.Contains(0))
	assert.True(t, m.Contains(5))
	assert.True(t, m.Contains(top))
	assert.False(t, m.Contains(6))
	assert.False(t, m.Contains(ComponentID(MaskCapacity)))
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, []ComponentID{0, 5, top}, slices.Collect(m.Bits()))

	m.Unset(5)
	assert.False(t, m.Contains(5))
	assert.Equal(t, 2, m.Count())

	m.Reset()
	assert.True(t, m.IsEmpty())
	assert.True(t, m.Equal(Bitmask{}))
}

func TestBitmaskCapacity(t *testing.T) {
	var m Bitmask
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		var capErr ComponentCapacityError
		require.True(t, errors.As(err, &capErr))
		assert.Equal(t, MaskCapacity, capErr.Capacity)
	}()
	m.Set(ComponentID(MaskCapacity))
}

func TestBitmaskIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b []ComponentID
		want []ComponentID
	}{
		{"disjoint", []ComponentID{1, 2}, []ComponentID{3, 4}, nil},
		{"overlap", []ComponentID{1, 2, 3}, []ComponentID{2, 3, 4}, []ComponentID{2, 3}},
		{"subset", []ComponentID{7}, []ComponentID{7, 40, 63}, []ComponentID{7}},
		{"empty", nil, []ComponentID{1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := NewBitmask(tt.a...), NewBitmask(tt.b...)
			want := NewBitmask(tt.want...)

			assert.True(t, a.Intersect(b).Equal(want))
			assert.True(t, a.Intersect(b).Equal(b.Intersect(a)), "intersect must commute")
			assert.True(t, a.Intersect(a).Equal(a), "intersect must be idempotent")
		})
	}
}

func TestBitmaskSuperset(t *testing.T) {
	query := NewBitmask(1, 2)

	assert.True(t, NewBitmask(1, 2, 3).ContainsAll(query))
	assert.True(t, NewBitmask(1, 2).ContainsAll(query))
	assert.False(t, NewBitmask(1, 3).ContainsAll(query))

	m := NewBitmask(1, 2, 9)
	assert.True(t, m.Intersect(query).Equal(query))
	assert.True(t, m.ContainsAny(NewBitmask(9, 10)))
	assert.False(t, m.ContainsAny(NewBitmask(10)))
}

func TestDynamicBitmask(t *testing.T) {
	m := NewDynamicBitmask(0)

	assert.False(t, m.Contains(1000))
	m.Unset(1000)

	m.Set(3)
	m.Set(1000)
	assert.True(t, m.Contains(3))
	assert.True(t, m.Contains(1000))
	assert.GreaterOrEqual(t, m.Width(), 1001)
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, []uint32{3, 1000}, slices.Collect(m.Bits()))

	next, ok := m.NextSet(4, 2000)
	require.True(t, ok)
	assert.Equal(t, uint32(1000), next)
	_, ok = m.NextSet(4, 1000)
	assert.False(t, ok)

	m.Unset(1000)
	assert.False(t, m.Contains(1000))
	assert.True(t, m.Equal(func() DynamicBitmask {
		var o DynamicBitmask
		o.Set(3)
		return o
	}()), "trailing zero words must not affect equality")
}

func TestDynamicBitmaskAlgebra(t *testing.T) {
	var a, b DynamicBitmask
	for _, bit := range []uint32{1, 64, 130} {
		a.Set(bit)
	}
	for _, bit := range []uint32{64, 130, 500} {
		b.Set(bit)
	}

	ab := a.Intersect(b)
	assert.Equal(t, []uint32{64, 130}, slices.Collect(ab.Bits()))
	assert.True(t, ab.Equal(b.Intersect(a)))
	assert.True(t, a.Intersect(a).Equal(a))
	assert.True(t, a.ContainsAll(ab))
	assert.True(t, b.ContainsAll(ab))
	assert.False(t, a.ContainsAll(b))

	a.Reset()
	assert.Equal(t, 0, a.Count())
}
