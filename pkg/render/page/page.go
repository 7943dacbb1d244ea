// Package page embeds rendered tree fragments into complete HTML documents.
//
// [Wrap] produces the container expected by the org-chart stylesheet:
//
//	<div class="tree"><ul><li>{fragment}</li></ul></div>
//
// [Document] wraps that container in a standalone page with the stylesheet
// inlined. Both are callers of [markup]; the fragment itself is never
// modified.
package page

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/treemark/pkg/render/markup"
	"github.com/matzehuels/treemark/pkg/tree"
)

// Defaults for Options fields left empty.
const (
	DefaultTitle       = "Composite Pattern Tree"
	DefaultHeading     = "Composite Pattern Tree Implementation"
	DefaultDescription = "This demonstrates the Composite design pattern with multiple node types."
)

// Options configures a full page.
type Options struct {
	Title       string          // <title> text (DefaultTitle if empty)
	Heading     string          // <h1> text (DefaultHeading if empty)
	Description string          // Paragraph below the heading (DefaultDescription if empty)
	Renderer    markup.Renderer // Fragment renderer (markup.Recursive if nil)
	Check       bool            // Reject cycles and shared children before rendering (Build only)
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Heading == "" {
		o.Heading = DefaultHeading
	}
	if o.Description == "" {
		o.Description = DefaultDescription
	}
	if o.Renderer == nil {
		o.Renderer = markup.Recursive{}
	}
	return o
}

// Wrap places a rendered root fragment in the tree container.
func Wrap(fragment string) string {
	return `<div class="tree"><ul><li>` + fragment + `</li></ul></div>`
}

// Fragment renders root with the configured renderer and wraps it.
func Fragment(opts Options, root tree.Node) string {
	opts = opts.withDefaults()
	return Wrap(opts.Renderer.Render(root))
}

// Document renders root as a complete HTML page.
func Document(opts Options, root tree.Node) string {
	opts = opts.withDefaults()
	return document(opts, Fragment(opts, root))
}

func document(opts Options, fragment string) string {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("    <meta charset=\"UTF-8\">\n")
	buf.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&buf, "    <title>%s</title>\n", markup.Escape(opts.Title))
	fmt.Fprintf(&buf, "    <style>\n%s    </style>\n", stylesheet)
	buf.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&buf, "    <h1>%s</h1>\n", markup.Escape(opts.Heading))
	fmt.Fprintf(&buf, "    <p>%s</p>\n", markup.Escape(opts.Description))
	fmt.Fprintf(&buf, "    %s\n", fragment)
	buf.WriteString("</body>\n</html>\n")
	return buf.String()
}
