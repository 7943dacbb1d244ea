package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treemark/pkg/tree"
)

func TestTree(t *testing.T) {
	root := Tree()
	require.NoError(t, tree.CheckAcyclic(root))

	var names []string
	tree.Walk(root, func(n tree.Node, _ int) { names = append(names, n.Name()) })
	assert.Equal(t, []string{"Main", "Sub-1", "Sub-2", "Sub-2-1", "Sub-2-2"}, names)

	c, ok := root.(tree.Control)
	require.True(t, ok)
	assert.Equal(t, "Test Btn", c.ControlLabel())
	assert.Empty(t, c.ControlAction())
}

func TestDocument(t *testing.T) {
	doc := Document()
	assert.Empty(t, doc.Title)
	assert.Equal(t, "Main", doc.Root.Name())
}
