package markup

import (
	"bytes"
	"io"

	"github.com/matzehuels/treemark/pkg/tree"
)

const (
	blockOpen   = `<div><input type="checkbox"> `
	blockClose  = `</div>`
	controlSep  = ` <br/> `
	listOpen    = `<ul>`
	listClose   = `</ul>`
	itemOpen    = `<li>`
	itemClose   = `</li>`
	buttonClose = `</button>`
)

// Renderer turns a tree into markup. Implementations must be pure: the same
// tree always yields the same string.
type Renderer interface {
	Render(n tree.Node) string
}

// Recursive renders with [Render].
type Recursive struct{}

// Render implements Renderer.
func (Recursive) Render(n tree.Node) string { return Render(n) }

// Iterative renders with [RenderIterative].
type Iterative struct{}

// Render implements Renderer.
func (Iterative) Render(n tree.Node) string { return RenderIterative(n) }

var (
	_ Renderer = Recursive{}
	_ Renderer = Iterative{}
)

// Render returns the markup for n and its descendants. A nil node renders as
// the empty string.
//
// Render recurses once per tree level and does not detect cycles; see
// [RenderIterative] and [RenderChecked].
func Render(n tree.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	renderNode(&buf, n)
	return buf.String()
}

// Write renders n to w.
func Write(w io.Writer, n tree.Node) error {
	_, err := io.WriteString(w, Render(n))
	return err
}

func renderNode(buf *bytes.Buffer, n tree.Node) {
	writeBlock(buf, n)
	if !n.HasChildren() {
		return
	}
	buf.WriteString(listOpen)
	for i := range n.ChildCount() {
		buf.WriteString(itemOpen)
		renderNode(buf, n.ChildAt(i))
		buf.WriteString(itemClose)
	}
	buf.WriteString(listClose)
}

// writeBlock writes the node's own content: checkbox, name and, depending on
// the variant, extra content.
func writeBlock(buf *bytes.Buffer, n tree.Node) {
	buf.WriteString(blockOpen)
	writeEscaped(buf, n.Name())

	switch n.Variant() {
	case tree.VariantActionable:
		if c, ok := n.(tree.Control); ok {
			writeControl(buf, c)
		}
	case tree.VariantPlain:
	default:
		// Unknown variants are drawn as plain nodes.
	}

	buf.WriteString(blockClose)
}

func writeControl(buf *bytes.Buffer, c tree.Control) {
	buf.WriteString(controlSep)
	if action := c.ControlAction(); action != "" {
		buf.WriteString(`<button onclick="`)
		writeEscaped(buf, action)
		buf.WriteString(`">`)
	} else {
		buf.WriteString(`<button>`)
	}
	writeEscaped(buf, c.ControlLabel())
	buf.WriteString(buttonClose)
}
