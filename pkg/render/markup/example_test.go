package markup_test

import (
	"fmt"

	"github.com/matzehuels/treemark/pkg/render/markup"
	"github.com/matzehuels/treemark/pkg/tree"
)

func ExampleRender() {
	root := tree.NewActionable("Main", tree.WithAction("toggle()"))
	root.AddChild(tree.NewPlain("Sub-1"))

	fmt.Println(markup.Render(root))
	// Output:
	// <div><input type="checkbox"> Main <br/> <button onclick="toggle()">Test Btn</button></div><ul><li><div><input type="checkbox"> Sub-1</div></li></ul>
}

func ExampleEscape() {
	fmt.Println(markup.Escape(`<a href="x">Tom & Jerry</a>`))
	// Output:
	// &lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&lt;/a&gt;
}
