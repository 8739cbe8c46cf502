package hierarchy

import (
	"fmt"
	"iter"

	"github.com/TheBitDrifter/depot"
)

// Ancestors yields e's parent, its parent's parent, and so on up to the root.
func Ancestors(nodes NodeSource, e depot.Entity) iter.Seq[depot.Entity] {
	return func(yield func(depot.Entity) bool) {
		n, ok := nodes.Get(e)
		for ok && n.parent.Valid() {
			if !yield(n.parent) {
				return
			}
			n, ok = nodes.Get(n.parent)
		}
	}
}

// IsAncestor reports whether ancestor appears above e.
func IsAncestor(nodes NodeSource, e, ancestor depot.Entity) bool {
	for a := range Ancestors(nodes, e) {
		if a == ancestor {
			return true
		}
	}
	return false
}

// Children yields e's direct children, most recently attached first.
func Children(nodes NodeSource, e depot.Entity) iter.Seq[depot.Entity] {
	return func(yield func(depot.Entity) bool) {
		n, ok := nodes.Get(e)
		if !ok {
			return
		}
		for c := n.firstChild; c.Valid(); {
			cn, ok := nodes.Get(c)
			if !ok || !yield(c) {
				return
			}
			c = cn.nextSib
		}
	}
}

// Descendants yields every node below root in depth-first pre-order.
func Descendants(nodes NodeSource, root depot.Entity) iter.Seq[depot.Entity] {
	return func(yield func(depot.Entity) bool) {
		n, ok := nodes.Get(root)
		if !ok {
			return
		}
		cur := n.firstChild
		for cur.Valid() {
			if !yield(cur) {
				return
			}
			v, ok := nodes.Get(cur)
			if !ok {
				return
			}
			if v.firstChild.Valid() {
				cur = v.firstChild
				continue
			}
			// Climb until a node with a next sibling, stopping at root.
			for !v.nextSib.Valid() {
				if !v.parent.Valid() || v.parent == root {
					return
				}
				if v, ok = nodes.Get(v.parent); !ok {
					return
				}
			}
			cur = v.nextSib
		}
	}
}

// DestroyTree frees root and every descendant. It returns how many entities
// were freed.
func DestroyTree(w *depot.World, root depot.Entity) (int, error) {
	nodes := depot.WriteArena[Node](w)
	if _, ok := nodes.Get(root); !ok {
		nodes.Release()
		return 0, fmt.Errorf("destroy tree at %v: %w", root, ErrNoNode)
	}
	doomed := []depot.Entity{root}
	for d := range Descendants(nodes, root) {
		doomed = append(doomed, d)
	}
	err := RemoveFromParent(nodes, root)
	nodes.Release()
	if err != nil {
		return 0, err
	}

	freed := 0
	for _, e := range doomed {
		if w.Free(e) {
			freed++
		}
	}
	return freed, nil
}
