package depot

import (
	"fmt"
	"reflect"
)

// DuplicateComponentError is raised when a component type is registered
// twice on the same world.
type DuplicateComponentError struct {
	Type reflect.Type
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("component already registered: %v", e.Type)
}

// ComponentCapacityError is raised when registering one more component type
// would exceed the presence mask width.
type ComponentCapacityError struct {
	Capacity int
}

func (e ComponentCapacityError) Error() string {
	return fmt.Sprintf("too many component types (capacity %d)", e.Capacity)
}

// UnregisteredComponentError is raised when a component type is used before
// it has been registered.
type UnregisteredComponentError struct {
	Type reflect.Type
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("component not registered: %v", e.Type)
}

// DeadEntityError is raised when an operation that requires a live entity
// receives a freed or unknown handle.
type DeadEntityError struct {
	Entity Entity
}

func (e DeadEntityError) Error() string {
	return fmt.Sprintf("entity %v is not alive", e.Entity)
}

// BorrowConflictError is raised when an arena is borrowed in a way that
// conflicts with an outstanding guard.
type BorrowConflictError struct {
	Type     reflect.Type
	Mutable  bool
	Readers  int
	Borrowed bool
}

func (e BorrowConflictError) Error() string {
	mode := "shared"
	if e.Mutable {
		mode = "exclusive"
	}
	if e.Borrowed {
		return fmt.Sprintf("cannot borrow %v (%s): already borrowed exclusively", e.Type, mode)
	}
	return fmt.Sprintf("cannot borrow %v (%s): %d outstanding readers", e.Type, mode, e.Readers)
}

// BuilderSealedError is raised when an EntityBuilder is used after Build.
type BuilderSealedError struct {
	Entity Entity
}

func (e BuilderSealedError) Error() string {
	return fmt.Sprintf("entity %v already built", e.Entity)
}
