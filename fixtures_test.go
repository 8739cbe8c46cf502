package depot

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Value int
}

// Reference counts how many times the world drops it.
type Reference struct {
	drops *atomic.Int64
}

func (r *Reference) Drop() {
	r.drops.Add(1)
}

func newTestWorld(opts ...Option) *World {
	return Factory.NewWorld(opts...)
}

var storageKinds = []StorageKind{Dense, Sparse, Column}

// pair and d0..d7 give 64 distinct component types for capacity tests.
type pair[A, B any] struct{}

type (
	d0 struct{}
	d1 struct{}
	d2 struct{}
	d3 struct{}
	d4 struct{}
	d5 struct{}
	d6 struct{}
	d7 struct{}
)

func pairRegistrars[A any]() []func(*World) {
	return []func(*World){
		func(w *World) { Register[pair[A, d0]](w, Sparse) },
		func(w *World) { Register[pair[A, d1]](w, Sparse) },
		func(w *World) { Register[pair[A, d2]](w, Sparse) },
		func(w *World) { Register[pair[A, d3]](w, Sparse) },
		func(w *World) { Register[pair[A, d4]](w, Sparse) },
		func(w *World) { Register[pair[A, d5]](w, Sparse) },
		func(w *World) { Register[pair[A, d6]](w, Sparse) },
		func(w *World) { Register[pair[A, d7]](w, Sparse) },
	}
}

// panicError runs fn and returns the error it panicked with as E.
func panicError[E error](t *testing.T, fn func()) (target E) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.As(err, &target), "panic %v is not a %T", err, target)
	}()
	fn()
	return target
}
