package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrCycle is returned by [CheckAcyclic] when a node is reachable from
	// itself. Rendering such a structure would never terminate.
	ErrCycle = errors.New("tree contains a cycle")

	// ErrSharedChild is returned by [CheckAcyclic] when the same node instance
	// is attached to more than one parent (or twice to the same parent).
	ErrSharedChild = errors.New("node has more than one owner")
)

// Walk visits root and its descendants depth-first in pre-order, calling fn
// with each node and its depth (root is 0). Children are visited in insertion
// order. Walk does not guard against cycles; see [CheckAcyclic].
func Walk(root Node, fn func(n Node, depth int)) {
	if root == nil {
		return
	}
	type frame struct {
		node  Node
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(f.node, f.depth)
		for i := f.node.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.ChildAt(i), f.depth + 1})
		}
	}
}

// Stats summarises the shape of a tree.
type Stats struct {
	Nodes     int             // Total nodes, root included
	Parents   int             // Nodes with at least one child
	Leaves    int             // Nodes without children
	MaxDepth  int             // Depth of the deepest node (root is 0)
	ByVariant map[Variant]int // Node count per variant
}

// Count computes Stats for the tree rooted at root. A nil root yields zero
// Stats with an empty ByVariant map.
func Count(root Node) Stats {
	s := Stats{ByVariant: map[Variant]int{}}
	Walk(root, func(n Node, depth int) {
		s.Nodes++
		if n.HasChildren() {
			s.Parents++
		} else {
			s.Leaves++
		}
		s.MaxDepth = max(s.MaxDepth, depth)
		s.ByVariant[n.Variant()]++
	})
	return s
}

// CheckAcyclic verifies that the structure below root is a proper tree: no
// node is its own descendant and every node has exactly one owner. The
// returned error wraps [ErrCycle] or [ErrSharedChild] and names the offending
// node.
//
// Node identity is interface equality, so the concrete node types must be
// comparable (all types in this package are pointers).
func CheckAcyclic(root Node) error {
	if root == nil {
		return nil
	}
	const (
		white = iota
		gray
		black
	)

	type frame struct {
		node Node
		next int
	}

	color := map[Node]int{root: gray}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == top.node.ChildCount() {
			color[top.node] = black
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.node.ChildAt(top.next)
		top.next++

		switch color[child] {
		case gray:
			return fmt.Errorf("%w: %q is its own descendant", ErrCycle, child.Name())
		case black:
			return fmt.Errorf("%w: %q", ErrSharedChild, child.Name())
		}
		color[child] = gray
		stack = append(stack, frame{node: child})
	}
	return nil
}
