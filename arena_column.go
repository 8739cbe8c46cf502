package depot

import (
	"fmt"

	"github.com/TheBitDrifter/table"
)

var _ Arena[int] = &ColumnArena[int]{}

// ColumnArena stores values in a single-column table. Rows are appended as
// indices are issued and never deleted, so a row number is the entity index.
// Occupancy is tracked beside the table because a row always holds a value.
type ColumnArena[T any] struct {
	accessor table.Accessor[T]
	tbl      table.Table
	occupied DynamicBitmask
	count    int
}

// NewColumnArena builds the backing table for T.
func NewColumnArena[T any]() (*ColumnArena[T], error) {
	schema := table.Factory.NewSchema()
	elem := table.FactoryNewElementType[T]()
	schema.Register(elem)

	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(table.Factory.NewEntryIndex()).
		WithElementTypes(elem).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build column table: %w", err)
	}
	return &ColumnArena[T]{
		accessor: table.FactoryNewAccessor[T](elem),
		tbl:      tbl,
	}, nil
}

func (a *ColumnArena[T]) row(index uint32) *T {
	return a.accessor.Get(int(index), a.tbl)
}

func (a *ColumnArena[T]) grow(n int) {
	if missing := n - a.tbl.Length(); missing > 0 {
		if _, err := a.tbl.NewEntries(missing); err != nil {
			panic(fmt.Errorf("failed to grow column table to %d rows: %w", n, err))
		}
	}
}

func (a *ColumnArena[T]) Insert(index uint32, value T) (T, bool) {
	a.grow(int(index) + 1)
	p := a.row(index)
	prev, had := *p, a.occupied.Contains(index)
	*p = value
	if !had {
		a.occupied.Set(index)
		a.count++
		var zero T
		prev = zero
	}
	return prev, had
}

func (a *ColumnArena[T]) Remove(index uint32) (T, bool) {
	var zero T
	if !a.occupied.Contains(index) {
		return zero, false
	}
	p := a.row(index)
	value := *p
	*p = zero
	a.occupied.Unset(index)
	a.count--
	return value, true
}

func (a *ColumnArena[T]) Get(index uint32) (T, bool) {
	if !a.occupied.Contains(index) {
		var zero T
		return zero, false
	}
	return *a.row(index), true
}

func (a *ColumnArena[T]) GetMut(index uint32) (*T, bool) {
	if !a.occupied.Contains(index) {
		return nil, false
	}
	return a.row(index), true
}

func (a *ColumnArena[T]) Len() int {
	return a.count
}

func (a *ColumnArena[T]) Reserve(n int) {
	a.grow(n)
}
