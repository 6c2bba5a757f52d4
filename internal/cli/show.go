package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
)

func newShowCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the detail view of one club.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			c, ok := service.ResolveSelected(a.Directory.Clubs(), args[0])
			if !ok {
				return fmt.Errorf("club %q: %w", args[0], domain.ErrNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), detailPanel(a.Engine.Card(c)))
			return nil
		},
	}
}
