package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

func newFacetsCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "Print the categories and tags available as filters, with club counts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := g.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			clubs := a.Directory.Clubs()
			facets := a.Engine.Facets(clubs)

			data := pterm.TableData{{"Kind", "Value", "Clubs"}}
			for _, v := range facets.Categories {
				data = append(data, []string{"category", v, countWhere(clubs, func(c domain.Club) bool { return c.HasCategory(v) })})
			}
			for _, v := range facets.Tags {
				data = append(data, []string{"tag", v, countWhere(clubs, func(c domain.Club) bool { return c.HasTag(v) })})
			}
			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return fmt.Errorf("render facets table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func countWhere(clubs []domain.Club, pred func(domain.Club) bool) string {
	n := 0
	for _, c := range clubs {
		if pred(c) {
			n++
		}
	}
	return humanize.Comma(int64(n))
}
