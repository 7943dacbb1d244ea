package markup

import (
	"github.com/matzehuels/treemark/pkg/errors"
	"github.com/matzehuels/treemark/pkg/tree"
)

// RenderChecked verifies that n is a proper tree before rendering it with r
// (the recursive renderer when r is nil). A cycle or a node owned by two
// parents yields an [errors.ErrCodeInvalidTree] error wrapping
// [tree.ErrCycle] or [tree.ErrSharedChild]; no partial output is returned.
func RenderChecked(n tree.Node, r Renderer) (string, error) {
	if err := tree.CheckAcyclic(n); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidTree, err, "cannot render tree")
	}
	if r == nil {
		r = Recursive{}
	}
	return r.Render(n), nil
}
