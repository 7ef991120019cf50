package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"butler/internal/cli"
	"butler/internal/model"
	"butler/internal/report"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var categoryFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked items",
		Long:  `Display tracked items ordered by expiry date, optionally filtered by category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			items := report.SortByExpiry(st.Items())
			if categoryFilter != "" {
				category, err := model.ParseCategory(categoryFilter)
				if err != nil {
					return err
				}
				items = report.FilterByCategory(items, category)
			}

			if len(items) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing tracked yet. Use 'butler add' to create an item."))
				return nil
			}

			now := time.Now()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Expires"),
				cli.BoldStyle.Render("Days"),
				cli.BoldStyle.Render("Status"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 24),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10),
				strings.Repeat("-", 4),
				strings.Repeat("-", 8))

			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
					shortID(item.ID),
					item.Name,
					item.Category.Label(),
					item.ExpiryDate.Format("2006-01-02"),
					report.DaysRemaining(item, now),
					renderStatus(report.StatusOf(item, now)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFilter, "category", "", "only show items in this category")

	return cmd
}

// shortID trims a UUID down to the prefix shown in tables. Full ids are
// accepted everywhere an id is taken as input.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func renderStatus(status report.Status) string {
	switch status {
	case report.StatusExpired:
		return cli.ErrorStyle.Render(string(status))
	case report.StatusUrgent:
		return cli.WarningStyle.Render(string(status))
	default:
		return cli.SubtleStyle.Render(string(status))
	}
}
