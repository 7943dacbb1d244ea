// Package markup renders a [tree.Node] hierarchy as nested HTML drawing the
// tree as an org chart.
//
// # Output
//
// Every node becomes a block holding a checkbox and its escaped name:
//
//	<div><input type="checkbox"> Main <br/> <button>Test Btn</button></div>
//
// Actionable nodes append a line break and a button; the onclick attribute is
// present only when the node has an action. A node with children is followed
// by a list holding one item per child, in insertion order:
//
//	<ul><li>{child 1}</li><li>{child 2}</li></ul>
//
// Leaves get no list at all. Nodes of unknown variants are drawn as plain
// nodes.
//
// # Escaping
//
// All caller-supplied text (names, button labels, actions) goes through
// [Escape] before it is written, whether as element text or attribute value.
//
// # Strategies
//
// [Render] walks the tree recursively and is the default. Its depth is
// limited by the goroutine stack, which is large but finite. [RenderIterative]
// keeps its own work stack and produces byte-identical output for trees of
// any height. Both assume a proper tree; [RenderChecked] rejects cycles and
// shared children with an error instead of looping forever.
//
// Rendering is a pure function of the tree: the same tree always yields the
// same bytes, and concurrent renders of a fully built tree are safe.
//
// The fragment is meant to be embedded by a caller; see
// [github.com/matzehuels/treemark/pkg/render/page] for the page wrapper.
package markup
