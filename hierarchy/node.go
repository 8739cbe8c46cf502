// Package hierarchy links entities into parent/child trees. Links live in a
// Node component, so walking a tree only needs a borrow of the Node arena.
package hierarchy

import (
	"errors"

	"github.com/TheBitDrifter/depot"
)

var (
	ErrNoNode     = errors.New("entity has no hierarchy node")
	ErrSelfParent = errors.New("entity cannot be its own parent")
	ErrCycle      = errors.New("parent is a descendant of child")
)

// Node is the intrusive link record of one entity. Children form a doubly
// linked sibling list hanging off the parent's firstChild.
type Node struct {
	parent     depot.Entity
	nextSib    depot.Entity
	prevSib    depot.Entity
	firstChild depot.Entity
}

func (n Node) Parent() depot.Entity      { return n.parent }
func (n Node) FirstChild() depot.Entity  { return n.firstChild }
func (n Node) NextSibling() depot.Entity { return n.nextSib }
func (n Node) PrevSibling() depot.Entity { return n.prevSib }

// IsRoot reports whether the node has no parent.
func (n Node) IsRoot() bool {
	return !n.parent.Valid()
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return !n.firstChild.Valid()
}

// NodeSource is a readable Node arena. Both depot.Reader[Node] and
// depot.Writer[Node] satisfy it.
type NodeSource interface {
	Get(e depot.Entity) (Node, bool)
}

// Register adds the Node component to w.
func Register(w *depot.World) depot.ComponentID {
	return depot.Register[Node](w, depot.Dense)
}

// Add gives e an unlinked node.
func Add(w *depot.World, e depot.Entity) {
	depot.AssignDefault[Node](w, e)
}
