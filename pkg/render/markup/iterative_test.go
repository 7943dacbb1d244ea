package markup

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treemark/pkg/errors"
	"github.com/matzehuels/treemark/pkg/tree"
)

func TestRenderIterativeMatchesRecursive(t *testing.T) {
	wide := tree.NewPlain("wide")
	for i := range 50 {
		child := tree.NewActionable(fmt.Sprintf("child-%d", i), tree.WithAction(fmt.Sprintf("pick(%d)", i)))
		child.AddChild(tree.NewPlain(fmt.Sprintf("grandchild-%d", i)))
		wide.AddChild(child)
	}

	for name, root := range map[string]tree.Node{
		"leaf":    tree.NewPlain("leaf"),
		"demo":    demoTree(),
		"company": companyTree(),
		"wide":    wide,
		"unknown": unknownNode{tree.NewPlain("x")},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Render(root), RenderIterative(root))
		})
	}
}

func TestRenderIterativeDeepChain(t *testing.T) {
	const depth = 100_000

	root := tree.NewPlain("n0")
	cur := root
	for i := 1; i < depth; i++ {
		next := tree.NewPlain(fmt.Sprintf("n%d", i))
		cur.AddChild(next)
		cur = next
	}

	got := RenderIterative(root)
	assert.Equal(t, depth-1, strings.Count(got, "<ul>"))
	assert.Equal(t, depth-1, strings.Count(got, "<li>"))
	assert.True(t, strings.HasSuffix(got, "</li></ul>"))
}

func TestRenderChecked(t *testing.T) {
	t.Run("valid tree", func(t *testing.T) {
		got, err := RenderChecked(demoTree(), nil)
		require.NoError(t, err)
		assert.Equal(t, Render(demoTree()), got)
	})

	t.Run("iterative strategy", func(t *testing.T) {
		got, err := RenderChecked(companyTree(), Iterative{})
		require.NoError(t, err)
		assert.Equal(t, Render(companyTree()), got)
	})

	t.Run("cycle", func(t *testing.T) {
		a, b := tree.NewPlain("a"), tree.NewPlain("b")
		a.AddChild(b)
		b.AddChild(a)

		got, err := RenderChecked(a, nil)
		require.Error(t, err)
		assert.Empty(t, got)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidTree))
		assert.ErrorIs(t, err, tree.ErrCycle)
	})

	t.Run("shared child", func(t *testing.T) {
		root, shared := tree.NewPlain("root"), tree.NewPlain("shared")
		root.AddChild(shared)
		root.AddChild(shared)

		_, err := RenderChecked(root, Iterative{})
		assert.ErrorIs(t, err, tree.ErrSharedChild)
	})
}
