package markup

import (
	"bytes"

	"github.com/matzehuels/treemark/pkg/tree"
)

// step is one pending unit of work: either a node to render or a literal
// closing tag to emit once the node's subtree is done.
type step struct {
	node tree.Node
	text string
}

// RenderIterative returns the same markup as [Render] without recursion. It
// keeps pending nodes and closing tags on an explicit stack, so tree height
// is bounded only by memory.
func RenderIterative(n tree.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	stack := []step{{node: n}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.node == nil {
			buf.WriteString(s.text)
			continue
		}

		writeBlock(&buf, s.node)
		if !s.node.HasChildren() {
			continue
		}
		buf.WriteString(listOpen)
		stack = append(stack, step{text: listClose})
		for i := s.node.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack,
				step{text: itemClose},
				step{node: s.node.ChildAt(i)},
				step{text: itemOpen},
			)
		}
	}
	return buf.String()
}
