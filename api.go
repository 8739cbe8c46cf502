package depot

import "reflect"

// Arena owns the values of one component type, keyed by entity index rather
// than by full handle. A slot means something only while its index is alive;
// the World keeps arenas in step with its handle pool.
type Arena[T any] interface {
	// Insert stores value at index and returns the value it replaced.
	Insert(index uint32, value T) (T, bool)
	// Remove moves the value out of index, leaving the slot empty.
	Remove(index uint32) (T, bool)
	Get(index uint32) (T, bool)
	GetMut(index uint32) (*T, bool)
	// Len returns the number of occupied slots.
	Len() int
	// Reserve prepares backing storage for indices below n.
	Reserve(n int)
}

// StorageKind selects the arena strategy a component type is stored with.
type StorageKind int

const (
	// Dense keeps a slot for every issued index. Best when most entities
	// carry the component.
	Dense StorageKind = iota
	// Sparse keeps a hashed index map. Best for rare components.
	Sparse
	// Column keeps values in a single-column table.
	Column
)

func (k StorageKind) String() string {
	switch k {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	case Column:
		return "column"
	}
	return "unknown"
}

// Dropper is implemented by components that release something when the
// World discards them. Drop runs exactly once, when the owning entity is
// freed. Values handed back to the caller by Assign or Remove are not
// dropped.
type Dropper interface {
	Drop()
}

// storage is the type-erased view of a registered arena the World uses for
// lifecycle work that does not know T.
type storage interface {
	id() ComponentID
	kind() StorageKind
	typ() reflect.Type
	borrows() *borrowState
	drop(index uint32)
	reserve(n int)
	len() int
}
