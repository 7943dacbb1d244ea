// Package cli implements the treemark command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treemark/internal/demo"
	"github.com/matzehuels/treemark/pkg/buildinfo"
	treeio "github.com/matzehuels/treemark/pkg/io"
	"github.com/matzehuels/treemark/pkg/observability"
	"github.com/matzehuels/treemark/pkg/render/markup"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "treemark"

	// envAddr overrides the default listen address of the serve command.
	envAddr = "TREEMARK_ADDR"

	// defaultAddr is the listen address used when neither --addr nor
	// TREEMARK_ADDR is set.
	defaultAddr = ":8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Treemark renders node trees as HTML org charts",
		Long:         `Treemark builds trees of plain and button nodes from TOML or JSON definitions and renders them as nested HTML lists styled as an org chart.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetRenderHooks(logHooks{logger: c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadDocument reads the definition at path, or returns the built-in demo
// tree when path is empty.
func loadDocument(ctx context.Context, path string) (*treeio.Document, error) {
	logger := loggerFromContext(ctx)
	if path == "" {
		logger.Debug("No tree file given, using demo tree")
		return demo.Document(), nil
	}
	logger.Debugf("Loading %s", path)
	return treeio.ImportFile(path)
}

// selectRenderer maps the --iterative flag to a renderer.
func selectRenderer(iterative bool) markup.Renderer {
	if iterative {
		return markup.Iterative{}
	}
	return markup.Recursive{}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// fileArg returns the optional positional tree file argument.
func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
