package hierarchy

import (
	"fmt"

	"github.com/TheBitDrifter/depot"
)

// SetParent makes child the first child of parent. A nil parent detaches
// child. The subtree under child moves with it.
func SetParent(nodes *depot.Writer[Node], child, parent depot.Entity) error {
	if _, ok := nodes.Get(child); !ok {
		return fmt.Errorf("set parent of %v: %w", child, ErrNoNode)
	}
	if parent.Valid() {
		if parent == child {
			return fmt.Errorf("set parent of %v: %w", child, ErrSelfParent)
		}
		if _, ok := nodes.Get(parent); !ok {
			return fmt.Errorf("set parent of %v to %v: %w", child, parent, ErrNoNode)
		}
		if IsAncestor(nodes, parent, child) {
			return fmt.Errorf("set parent of %v to %v: %w", child, parent, ErrCycle)
		}
	}

	if err := RemoveFromParent(nodes, child); err != nil {
		return err
	}
	if !parent.Valid() {
		return nil
	}

	p, _ := nodes.GetMut(parent)
	next := p.firstChild
	p.firstChild = child

	c, _ := nodes.GetMut(child)
	c.parent = parent
	c.nextSib = next
	if next.Valid() {
		if n, ok := nodes.GetMut(next); ok {
			n.prevSib = child
		}
	}
	return nil
}

// RemoveFromParent unlinks e from its parent and siblings. Its own children
// stay attached to it.
func RemoveFromParent(nodes *depot.Writer[Node], e depot.Entity) error {
	node, ok := nodes.GetMut(e)
	if !ok {
		return fmt.Errorf("remove %v from parent: %w", e, ErrNoNode)
	}
	parent, next, prev := node.parent, node.nextSib, node.prevSib
	node.parent, node.nextSib, node.prevSib = depot.NilHandle, depot.NilHandle, depot.NilHandle

	if n, ok := nodes.GetMut(next); ok {
		n.prevSib = prev
	}
	if p, ok := nodes.GetMut(prev); ok {
		p.nextSib = next
	} else if p, ok := nodes.GetMut(parent); ok {
		p.firstChild = next
	}
	return nil
}
