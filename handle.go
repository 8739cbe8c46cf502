package depot

import "fmt"

// Handle is a generational index. The index addresses a slot and is recycled
// once the handle is freed; the version tells apart successive occupants of
// the same slot. Two handles are equal only if both fields match.
type Handle struct {
	index   uint32
	version uint32
}

// Entity identifies a game object owned by a World.
type Entity = Handle

// NilHandle is the zero handle. No pool ever issues it.
var NilHandle = Handle{}

// NewHandle constructs a handle from its parts.
func NewHandle(index, version uint32) Handle {
	return Handle{index: index, version: version}
}

// Index returns the slot index.
func (h Handle) Index() uint32 {
	return h.index
}

// Version returns the slot generation the handle was issued with.
func (h Handle) Version() uint32 {
	return h.version
}

// Valid reports whether h is not the nil handle. It says nothing about
// liveness; ask the issuing pool for that.
func (h Handle) Valid() bool {
	return h.index > 0 || h.version > 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.index, h.version)
}
