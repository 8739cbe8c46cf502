package depot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityBuilder(t *testing.T) {
	w := newTestWorld()
	Register[Position](w, Dense)
	Register[Velocity](w, Sparse)
	Register[Health](w, Column)

	b := w.NewEntity()
	With(b, Position{X: 1})
	With(b, Velocity{Y: 2})
	WithDefault[Health](b)
	e := b.Build()

	assert.Equal(t, b.Entity(), e)
	assert.True(t, w.IsAlive(e))
	p, ok := Fetch[Position](w, e)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1}, p)
	assert.True(t, Has[Velocity](w, e))
	assert.True(t, Has[Health](w, e))
}

func TestEntityBuilderSealed(t *testing.T) {
	w := newTestWorld()
	Register[Position](w, Dense)

	b := w.NewEntity()
	e := b.Build()

	err := panicError[BuilderSealedError](t, func() { With(b, Position{}) })
	assert.Equal(t, e, err.Entity)
	panicError[BuilderSealedError](t, func() { b.Build() })
	assert.False(t, Has[Position](w, e))
}
