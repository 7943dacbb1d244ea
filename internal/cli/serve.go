package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treemark/internal/server"
	treeio "github.com/matzehuels/treemark/pkg/io"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	iterative bool
	check     bool
}

// serveCommand creates the serve command.
//
// The tree file is re-read on every request so edits show up on reload.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultListenAddr()}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the rendered tree over HTTP",
		Long: `Serve a tree definition as an HTML page.

Routes:
  /               full page
  /tree           full page
  /tree/fragment  wrapped tree only
  /healthz        liveness check

The listen address defaults to $` + envAddr + ` or ` + defaultAddr + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), fileArg(args), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.iterative, "iterative", false, "render with an explicit stack instead of recursion")
	cmd.Flags().BoolVar(&opts.check, "check", true, "reject cycles and shared children")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path string, opts serveOpts) error {
	source := func(ctx context.Context) (*treeio.Document, error) {
		return loadDocument(withLogger(ctx, c.Logger), path)
	}

	// Fail fast on a broken definition instead of on the first request.
	if _, err := source(ctx); err != nil {
		return err
	}

	handler := server.NewHandler(server.Config{
		Source:   source,
		Renderer: selectRenderer(opts.iterative),
		Check:    opts.check,
		Logger:   c.Logger,
	})
	return server.Serve(ctx, opts.addr, handler, c.Logger)
}

func defaultListenAddr() string {
	if addr := os.Getenv(envAddr); addr != "" {
		return addr
	}
	return defaultAddr
}
