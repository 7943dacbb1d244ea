// Package tree provides the node model rendered by treemark: a rooted tree of
// heterogeneous nodes sharing one uniform interface.
//
// # Overview
//
// Every element of a tree implements [Node]. A node has a display name, an
// ordered list of children it exclusively owns, and a [Variant] tag naming the
// shape of any extra data it carries. Two variants exist:
//
//   - [VariantPlain]: name and children only ([Plain])
//   - [VariantActionable]: adds a control label and action ([Actionable])
//
// Renderers dispatch on [Node.Variant] and then read the variant payload
// through a capability interface such as [Control]. A node reporting a
// variant the renderer does not know is drawn as a plain node.
//
// # Building Trees
//
// Trees are built bottom-up by composition and are read-only afterwards:
//
//	main := tree.NewActionable("Main", tree.WithLabel("Test Btn"))
//	sub2 := tree.NewPlain("Sub-2")
//	sub2.AddChild(tree.NewPlain("Sub-2-1"))
//	sub2.AddChild(tree.NewPlain("Sub-2-2"))
//	main.AddChild(tree.NewPlain("Sub-1"))
//	main.AddChild(sub2)
//
// [Node.AddChild] performs no cycle or ownership check. Attaching a node below
// itself, or under two parents, breaks the tree contract; use [CheckAcyclic]
// before rendering trees assembled from untrusted input.
//
// # Concurrency
//
// Nodes are not safe for concurrent mutation. A fully built tree may be read
// (and rendered) from any number of goroutines.
package tree
