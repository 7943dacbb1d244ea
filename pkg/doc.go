// Package pkg provides the core libraries for treemark.
//
// # Overview
//
// Treemark turns a tree of heterogeneous nodes into nested HTML lists that a
// stylesheet draws as an org chart. The pkg directory is organized into:
//
//  1. [tree] - The node model (plain and button nodes, traversal, shape checks)
//  2. [render/markup] - The pure HTML renderer and text escaping
//  3. [render/page] - Tree container, standalone pages and render reporting
//  4. [io] - TOML and JSON tree definitions
//  5. [errors] - Coded errors and input validation
//  6. [observability] - Hooks for render and request events
//  7. [buildinfo] - Version information set at link time
//
// # Architecture
//
// The typical data flow through treemark:
//
//	TOML/JSON definition
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [tree] package (node model)
//	         ↓
//	    [render/markup] package (escaped HTML fragment)
//	         ↓
//	    [render/page] package (container + page)
//
// # Quick Start
//
//	root := tree.NewActionable("Main")
//	root.AddChild(tree.NewPlain("Sub-1"))
//
//	html := markup.Render(root)
//	page := page.Document(page.Options{}, root)
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/treemark/pkg/tree
// [render/markup]: https://pkg.go.dev/github.com/matzehuels/treemark/pkg/render/markup
// [render/page]: https://pkg.go.dev/github.com/matzehuels/treemark/pkg/render/page
// [io]: https://pkg.go.dev/github.com/matzehuels/treemark/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/treemark/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/treemark/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/treemark/pkg/buildinfo
package pkg
