package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"butler/internal/cli"
	"butler/internal/model"
	"butler/internal/report"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show dashboard counts and cost projection",
		Long: `Display urgent/expired counts, due-soon buckets, the category breakdown,
and the projected monthly subscription cost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			items := st.Items()
			settings := st.Settings()
			now := time.Now()

			urgent := report.Urgent(items, now)
			expired := report.Expired(items, now)
			upcoming := report.UpcomingCounts(items, now)
			histogram := report.CategoryHistogram(items)
			cost := report.MonthlyCost(items)
			subscriptions := report.FilterByCategory(items, model.CategorySubscription)

			fmt.Println(cli.FormatTitle("Expiry Butler"))

			fmt.Printf("  %s  due within 7 days\n", cli.WarningStyle.Render(fmt.Sprintf("%3d", len(urgent))))
			fmt.Printf("  %s  expired\n\n", cli.ErrorStyle.Render(fmt.Sprintf("%3d", len(expired))))

			fmt.Println(cli.BoldStyle.Render("Upcoming"))
			fmt.Printf("  today: %d   this week: %d   within 30 days: %d\n\n",
				upcoming.Today, upcoming.Week, upcoming.Month)

			if len(histogram) > 0 {
				fmt.Println(cli.BoldStyle.Render("By category"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, bucket := range histogram {
					fmt.Fprintf(w, "  %s\t%d\n", bucket.Category.Label(), bucket.Count)
				}
				_ = w.Flush()
				fmt.Println()
			}

			fmt.Println(cli.BoldStyle.Render("Subscriptions"))
			fmt.Printf("  %d tracked, estimated %s %.2f per month\n",
				len(subscriptions), settings.Currency, cost)

			return nil
		},
	}
}
