package depot

import "fmt"

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

// QueryNode is a predicate over an entity's component mask.
type QueryNode interface {
	Evaluate(m Bitmask) bool
}

type compositeNode struct {
	op       Operation
	children []QueryNode
	mask     Bitmask
}

// And matches masks holding every listed component and satisfying every
// nested node. Items are ComponentIDs, []ComponentID or QueryNodes.
func And(items ...any) QueryNode {
	return newCompositeNode(OpAnd, items)
}

// Or matches masks holding any listed component or satisfying any nested
// node.
func Or(items ...any) QueryNode {
	return newCompositeNode(OpOr, items)
}

// Not matches masks holding none of the listed components and satisfying
// none of the nested nodes.
func Not(items ...any) QueryNode {
	return newCompositeNode(OpNot, items)
}

func newCompositeNode(op Operation, items []any) *compositeNode {
	n := &compositeNode{op: op}
	for _, item := range items {
		switch v := item.(type) {
		case ComponentID:
			n.mask.Set(v)
		case []ComponentID:
			for _, id := range v {
				n.mask.Set(id)
			}
		case QueryNode:
			n.children = append(n.children, v)
		default:
			panic(fmt.Errorf("unsupported query item %T", item))
		}
	}
	return n
}

func (n *compositeNode) Evaluate(m Bitmask) bool {
	switch n.op {
	case OpAnd:
		if !m.ContainsAll(n.mask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(m) {
				return false
			}
		}
		return true

	case OpOr:
		if !n.mask.IsEmpty() && m.ContainsAny(n.mask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(m) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(m) {
				return false
			}
		}
		return n.mask.IsEmpty() || !m.ContainsAny(n.mask)
	}
	return false
}
