package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/treemark/pkg/tree"
)

// statsCommand prints the shape of a tree definition.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarise a tree definition",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd.Context(), fileArg(args))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			// Count does not terminate on a cycle, so check first.
			if err := tree.CheckAcyclic(doc.Root); err != nil {
				printError(w, "%v", err)
				return err
			}

			s := tree.Count(doc.Root)
			source := fileArg(args)
			if source == "" {
				source = "demo"
			}
			printTitle(w, doc.Root.Name())
			printKeyValue(w, "Source", source)
			printKeyNumber(w, "Nodes", s.Nodes)
			printKeyNumber(w, "Parents", s.Parents)
			printKeyNumber(w, "Leaves", s.Leaves)
			printKeyNumber(w, "Depth", s.MaxDepth)
			for _, v := range []tree.Variant{tree.VariantPlain, tree.VariantActionable} {
				printKeyNumber(w, v.String(), s.ByVariant[v])
			}
			printSuccess(w, "well-formed tree")
			return nil
		},
	}
}
