package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// badge colours a card's badge by urgency.
func badge(c domain.ClubCard) string {
	switch c.Urgency {
	case domain.UrgencyUrgent:
		return pterm.Red(c.Badge)
	case domain.UrgencySoon:
		return pterm.Yellow(c.Badge)
	case domain.UrgencyOpen:
		return pterm.Green(c.Badge)
	default:
		return pterm.Gray(c.Badge)
	}
}

// clubTable renders cards as a table. An empty list renders a placeholder line.
func clubTable(w io.Writer, title string, cards []domain.ClubCard) error {
	fmt.Fprintln(w, pterm.Bold.Sprintf("%s (%s)", title, humanize.Comma(int64(len(cards)))))
	if len(cards) == 0 {
		fmt.Fprintln(w, pterm.Gray("  no clubs"))
		return nil
	}

	data := pterm.TableData{{"ID", "School", "Name", "Status", "Categories", "Tags"}}
	for _, c := range cards {
		data = append(data, []string{
			c.ID,
			c.School,
			c.Name,
			badge(c),
			strings.Join(c.Categories, ", "),
			strings.Join(c.Tags, ", "),
		})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render %s table: %w", title, err)
	}
	fmt.Fprintln(w, out)
	return nil
}

// summaryLine is the header line: totals and the load hint.
func summaryLine(s domain.Summary, shown int) string {
	return fmt.Sprintf("%s of %s clubs shown, %s recruiting (%s)",
		humanize.Comma(int64(shown)),
		humanize.Comma(int64(s.Total)),
		humanize.Comma(int64(s.Recruiting)),
		s.Hint,
	)
}

// detailPanel renders the detail view of one club.
func detailPanel(c domain.ClubCard) string {
	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", pterm.Bold.Sprint(label+":"), value)
	}
	row("School", c.School)
	row("Summary", c.OneLine)
	row("Deadline", c.DeadlineText)
	row("Status", badge(c))
	row("Categories", strings.Join(c.Categories, ", "))
	row("Tags", strings.Join(c.Tags, ", "))
	row("Activity", c.ActivityTime)
	row("Location", c.Location)
	row("Apply", c.ApplyURL)
	row("Contact", c.ContactURL)
	if c.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", c.Description)
	}
	return pterm.DefaultBox.WithTitle(c.Name).Sprint(strings.TrimRight(b.String(), "\n"))
}
