package page

import (
	"context"
	"time"

	"github.com/matzehuels/treemark/pkg/errors"
	"github.com/matzehuels/treemark/pkg/observability"
	"github.com/matzehuels/treemark/pkg/render/markup"
	"github.com/matzehuels/treemark/pkg/tree"
)

// Kind selects what Build produces.
type Kind int

const (
	// KindDocument is a complete HTML page (see Document).
	KindDocument Kind = iota
	// KindFragment is the wrapped tree only (see Fragment).
	KindFragment
)

// Build renders root as a document or fragment and reports the render to the
// registered observability hooks. With opts.Check set, a malformed tree
// yields an error and no output.
func Build(ctx context.Context, opts Options, root tree.Node, kind Kind) (string, error) {
	opts = opts.withDefaults()
	strategy := StrategyName(opts.Renderer)
	hooks := observability.Render()

	start := time.Now()
	if opts.Check {
		if err := tree.CheckAcyclic(root); err != nil {
			err = errors.Wrap(errors.ErrCodeInvalidTree, err, "cannot render tree")
			hooks.OnRenderStart(ctx, strategy, 0)
			hooks.OnRenderComplete(ctx, strategy, 0, time.Since(start), err)
			return "", err
		}
	}

	// Count walks the tree, so it must run after the cycle check.
	hooks.OnRenderStart(ctx, strategy, tree.Count(root).Nodes)
	fragment := Wrap(opts.Renderer.Render(root))

	out := fragment
	if kind == KindDocument {
		out = document(opts, fragment)
	}
	hooks.OnRenderComplete(ctx, strategy, len(out), time.Since(start), nil)
	return out, nil
}

// StrategyName names the traversal used by r: "recursive", "iterative" or
// "custom".
func StrategyName(r markup.Renderer) string {
	switch r.(type) {
	case nil, markup.Recursive, *markup.Recursive:
		return "recursive"
	case markup.Iterative, *markup.Iterative:
		return "iterative"
	default:
		return "custom"
	}
}
