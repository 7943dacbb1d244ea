package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/treemark/internal/demo"
	"github.com/matzehuels/treemark/pkg/render/page"
)

// demoCommand prints the demo page to stdout.
func (c *CLI) demoCommand() *cobra.Command {
	var fragment bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the built-in demo tree as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := page.KindDocument
			if fragment {
				kind = page.KindFragment
			}
			out, err := page.Build(cmd.Context(), page.Options{}, demo.Tree(), kind)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(out))
			return err
		},
	}

	cmd.Flags().BoolVar(&fragment, "fragment", false, "print the wrapped tree without the page")
	return cmd
}
