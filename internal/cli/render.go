package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/treemark/pkg/errors"
	"github.com/matzehuels/treemark/pkg/render/markup"
	"github.com/matzehuels/treemark/pkg/render/page"
	"github.com/matzehuels/treemark/pkg/tree"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path (stdout if empty)
	fragment  bool   // emit the wrapped tree only, without the page around it
	raw       bool   // emit the bare root fragment, no wrapper
	iterative bool   // use the explicit-stack renderer
	check     bool   // reject cycles and shared children before rendering
	title     string // page title and heading override
}

// renderCommand creates the render command.
//
// Without a file argument the built-in demo tree is rendered.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree definition to HTML",
		Long: `Render a TOML or JSON tree definition to HTML.

By default a complete page with the org-chart stylesheet is written. Use
--fragment for the wrapped tree only, or --raw for the bare root markup.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, fileArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "write the wrapped tree without the page")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "write the bare root markup")
	cmd.Flags().BoolVar(&opts.iterative, "iterative", false, "render with an explicit stack instead of recursion")
	cmd.Flags().BoolVar(&opts.check, "check", false, "reject cycles and shared children")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title and heading")
	cmd.MarkFlagsMutuallyExclusive("fragment", "raw")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	r := selectRenderer(opts.iterative)

	var out string
	if opts.raw {
		out, err = renderRaw(doc.Root, r, opts.check)
	} else {
		pageOpts := page.Options{
			Title:       doc.Title,
			Heading:     doc.Heading,
			Description: doc.Description,
			Renderer:    r,
			Check:       opts.check,
		}
		if opts.title != "" {
			pageOpts.Title = opts.title
			pageOpts.Heading = opts.title
		}
		kind := page.KindDocument
		if opts.fragment {
			kind = page.KindFragment
		}
		out, err = page.Build(ctx, pageOpts, doc.Root, kind)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(opts.output, []byte(out), cmd.OutOrStdout()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	if opts.output != "" {
		prog.done("Rendered tree", "bytes", len(out))
		printFile(cmd.ErrOrStderr(), opts.output)
	}
	return nil
}

// renderRaw renders the root markup without the tree container.
func renderRaw(root tree.Node, r markup.Renderer, check bool) (string, error) {
	if check {
		return markup.RenderChecked(root, r)
	}
	return r.Render(root), nil
}
