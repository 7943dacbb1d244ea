// Package demo holds the built-in sample tree shown when no definition file
// is given.
package demo

import (
	"github.com/matzehuels/treemark/pkg/io"
	"github.com/matzehuels/treemark/pkg/tree"
)

// Tree builds the sample org chart:
//
//	Main [Test Btn]
//	├── Sub-1
//	└── Sub-2
//	    ├── Sub-2-1
//	    └── Sub-2-2
func Tree() tree.Node {
	main := tree.NewActionable("Main", tree.WithLabel(tree.DefaultControlLabel))

	sub1 := tree.NewPlain("Sub-1")
	sub2 := tree.NewPlain("Sub-2")
	sub2.AddChild(tree.NewPlain("Sub-2-1"))
	sub2.AddChild(tree.NewPlain("Sub-2-2"))

	main.AddChild(sub1)
	main.AddChild(sub2)
	return main
}

// Document wraps Tree with default page text.
func Document() *io.Document {
	return &io.Document{Root: Tree()}
}
