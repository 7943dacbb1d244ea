// Package render groups the HTML renderers for node trees.
//
// [markup] turns a single tree into the markup fragment for its root: one
// block per node, nested <ul>/<li> lists for children, all text escaped. It
// has no knowledge of pages or styling.
//
// [page] places that fragment in the org-chart container and, optionally, a
// standalone document with the stylesheet inlined. It is also where renders
// are reported to the observability hooks.
//
// [markup]: github.com/matzehuels/treemark/pkg/render/markup
// [page]: github.com/matzehuels/treemark/pkg/render/page
package render
