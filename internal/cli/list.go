package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
	"github.com/homesweetlove/club-of-dcu.io/internal/service"
)

type listOptions struct {
	query          string
	category       string
	tag            string
	recruitingOnly bool
	sort           string
}

func newListCmd(g *globalOptions) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the all, recruiting and upcoming-deadline lists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := g.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			q := domain.Query{
				SearchText:     opts.query,
				Category:       opts.category,
				Tag:            opts.tag,
				RecruitingOnly: opts.recruitingOnly,
				Sort:           domain.SortMode(opts.sort),
			}.Normalized()
			views := a.Engine.DeriveViews(a.Directory.Clubs(), q)

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, summaryLine(a.Directory.Summary(), len(views.All)))
			if err := clubTable(w, fmt.Sprintf("Recruiting soon (next %d)", service.UpcomingLimit), views.Upcoming); err != nil {
				return err
			}
			if err := clubTable(w, "Recruiting", views.Recruiting); err != nil {
				return err
			}
			return clubTable(w, "All clubs", views.All)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.query, "query", "q", "", "search text (name, school, summary, description, categories, tags)")
	f.StringVar(&opts.category, "category", "", "only clubs in this category")
	f.StringVar(&opts.tag, "tag", "", "only clubs with this tag")
	f.BoolVar(&opts.recruitingOnly, "recruiting-only", false, "only clubs that are recruiting")
	f.StringVar(&opts.sort, "sort", string(domain.SortDeadline), "sort order: deadline, name, school")
	return cmd
}
