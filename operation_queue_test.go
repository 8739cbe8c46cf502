package depot

import (
	"bytes"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBufferOrdering(t *testing.T) {
	var drops atomic.Int64
	w := newTestWorld()
	Register[Position](w, Dense)
	Register[Reference](w, Sparse)

	keep := w.Create()
	doomed := w.Create()
	Assign(w, doomed, Reference{drops: &drops})

	buf := Factory.NewCommandBuffer()
	buf.Free(doomed)
	EnqueueAssign(buf, doomed, Position{X: 1}) // ignored: pending free
	EnqueueAssign(buf, keep, Position{X: 1})
	EnqueueAssign(buf, keep, Position{X: 2}) // replaces the previous assign
	buf.Create(func(b *EntityBuilder) {
		With(b, Position{X: 3})
	})
	buf.Free(doomed)
	assert.Equal(t, 3, buf.Len())

	created := buf.Apply(w)

	require.Len(t, created, 1)
	// The create ran before the free, so it did not reuse doomed's slot.
	assert.NotEqual(t, doomed.Index(), created[0].Index())
	got, _ := Fetch[Position](w, created[0])
	assert.Equal(t, Position{X: 3}, got)

	got, _ = Fetch[Position](w, keep)
	assert.Equal(t, Position{X: 2}, got)

	assert.False(t, w.IsAlive(doomed))
	assert.Equal(t, int64(1), drops.Load())
	assert.Equal(t, 0, buf.Len())
	assert.Nil(t, buf.Apply(w), "empty buffer")
}

func TestCommandBufferRemove(t *testing.T) {
	w := newTestWorld()
	Register[Position](w, Dense)
	Register[Velocity](w, Dense)

	e := w.Create()
	Assign(w, e, Position{})
	Assign(w, e, Velocity{})

	buf := Factory.NewCommandBuffer()
	EnqueueRemove[Velocity](buf, e)
	EnqueueAssign(buf, e, Position{X: 4})
	buf.Apply(w)

	assert.False(t, Has[Velocity](w, e))
	got, _ := Fetch[Position](w, e)
	assert.Equal(t, Position{X: 4}, got)
}

func TestCommandBufferSkipsDeadEntities(t *testing.T) {
	w := newTestWorld()
	Register[Position](w, Dense)

	e := w.Create()
	buf := Factory.NewCommandBuffer()
	EnqueueAssign(buf, e, Position{X: 1})
	w.Free(e)

	assert.NotPanics(t, func() { buf.Apply(w) })
	assert.Equal(t, 0, Count[Position](w))
}

func TestCommandBufferDuringView(t *testing.T) {
	w := newTestWorld()
	Register[Position](w, Dense)
	for i := range 6 {
		Assign(w, w.Create(), Position{X: float64(i)})
	}

	view, pos := ViewWith[Position](w)
	buf := Factory.NewCommandBuffer()
	for c := view.Cursor(); c.Next(); {
		p, _ := pos.GetFromCursor(c)
		if int(p.X)%2 == 1 {
			buf.Free(c.Entity())
		}
	}
	view.Release()
	buf.Apply(w)

	assert.Equal(t, 3, w.Len())
}

func TestCommandBufferLogs(t *testing.T) {
	var logs bytes.Buffer
	w := newTestWorld(WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	buf := Factory.NewCommandBuffer()
	buf.Create(nil)
	buf.Create(nil)
	buf.Apply(w)

	assert.Contains(t, logs.String(), "applied command buffer")
	assert.Contains(t, logs.String(), "created=2")
	assert.Equal(t, 2, w.Len())
}
