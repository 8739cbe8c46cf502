package depot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArena(t *testing.T, kind StorageKind) Arena[Position] {
	t.Helper()
	switch kind {
	case Dense:
		return NewDenseArena[Position](0)
	case Sparse:
		return NewSparseArena[Position]()
	case Column:
		a, err := NewColumnArena[Position]()
		require.NoError(t, err)
		return a
	}
	t.Fatalf("unknown kind %v", kind)
	return nil
}

// TestArenaContract runs the same operation contract against every arena
// kind.
func TestArenaContract(t *testing.T) {
	for _, kind := range storageKinds {
		t.Run(kind.String(), func(t *testing.T) {
			a := newTestArena(t, kind)
			a.Reserve(4)

			_, ok := a.Get(3)
			assert.False(t, ok, "empty arena")
			_, ok = a.GetMut(100)
			assert.False(t, ok, "out of range")

			prev, had := a.Insert(3, Position{X: 1, Y: 2})
			assert.False(t, had)
			assert.Zero(t, prev)
			assert.Equal(t, 1, a.Len())

			got, ok := a.Get(3)
			require.True(t, ok)
			assert.Equal(t, Position{X: 1, Y: 2}, got)

			prev, had = a.Insert(3, Position{X: 5})
			assert.True(t, had)
			assert.Equal(t, Position{X: 1, Y: 2}, prev)
			assert.Equal(t, 1, a.Len())

			p, ok := a.GetMut(3)
			require.True(t, ok)
			p.Y = 9
			got, _ = a.Get(3)
			assert.Equal(t, Position{X: 5, Y: 9}, got)

			// Growing past the reserved size keeps earlier values.
			a.Insert(40, Position{X: 40})
			got, ok = a.Get(3)
			require.True(t, ok)
			assert.Equal(t, Position{X: 5, Y: 9}, got)
			assert.Equal(t, 2, a.Len())

			removed, ok := a.Remove(3)
			require.True(t, ok)
			assert.Equal(t, Position{X: 5, Y: 9}, removed)
			_, ok = a.Get(3)
			assert.False(t, ok)
			_, ok = a.Remove(3)
			assert.False(t, ok, "double remove")
			assert.Equal(t, 1, a.Len())

			// The slot stays usable after removal.
			_, had = a.Insert(3, Position{X: 7})
			assert.False(t, had)
			got, _ = a.Get(3)
			assert.Equal(t, Position{X: 7}, got)
		})
	}
}

func TestStorageKindString(t *testing.T) {
	assert.Equal(t, "dense", Dense.String())
	assert.Equal(t, "sparse", Sparse.String())
	assert.Equal(t, "column", Column.String())
	assert.Equal(t, "unknown", StorageKind(9).String())
}
