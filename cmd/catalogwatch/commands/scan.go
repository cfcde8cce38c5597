package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cloudopsio/catalogwatch/internal/app"
	"github.com/cloudopsio/catalogwatch/internal/classify"
	"github.com/cloudopsio/catalogwatch/internal/notifier"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one monitoring cycle and print the findings",
	Long: `Fetch a snapshot of provisioned products and the user roster, classify
them, and print the findings. Useful for CI/CD pipelines or cron jobs.

Example:
  catalogwatch scan --region ap-south-1 --stale-after 8h`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := app.NewLogger(settings.JSONLogs, settings.Verbose)
		ctx := context.Background()

		clients, err := app.BuildClients(ctx, settings, logger)
		if err != nil {
			fmt.Printf("Error wiring sources: %v\n", err)
			os.Exit(1)
		}

		findings := app.RunCycle(ctx, settings, clients, logger)
		printFindings(findings)

		if clients.Slack != nil {
			postToSlack(clients.Slack, findings, logger)
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF99")).
			MarginTop(1)
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF3366"))
)

func printFindings(f app.Findings) {
	fmt.Println(sectionStyle.Render(fmt.Sprintf("SNAPSHOT  %d products @ %s",
		f.Products, f.GeneratedAt.Format("2006-01-02 15:04:05 MST"))))

	fmt.Println(sectionStyle.Render(fmt.Sprintf("STALE PRODUCTS (%d)", len(f.Stale))))
	for _, r := range f.Stale {
		owner := ""
		if r.Owner != nil {
			owner = fmt.Sprintf("  %s %s <%s>", r.Owner.FirstName, r.Owner.LastName, r.Owner.Email)
		}
		fmt.Printf("  [%d] %-30s %-10s running %s%s\n", r.Index, r.Product.Name, r.Status, r.Duration, owner)
	}

	fmt.Println(sectionStyle.Render(fmt.Sprintf("NAMING VIOLATIONS (%d)", len(f.Violations))))
	for _, r := range f.Violations {
		fmt.Printf("  [%d] %s: got %q, expected %q\n", r.Index, r.Email,
			r.ProvidedName, r.ExpectedName)
	}

	fmt.Println(sectionStyle.Render(fmt.Sprintf("UNAUTHORIZED LAUNCHES (%d)", len(f.Unauthorized))))
	for _, r := range f.Unauthorized {
		fmt.Println(alertStyle.Render(fmt.Sprintf("  [%d] %s launched %s (%s)",
			r.Index, r.Email, r.Product.Name, r.Product.ProductType)))
	}

	fmt.Println(sectionStyle.Render(fmt.Sprintf("HIGH LAUNCH COUNTS (%d)", len(f.Aggregates))))
	for _, r := range f.Aggregates {
		fmt.Printf("  [%d] %s launched %d products\n", r.Index, r.Email, r.ProductCount)
	}

	if len(f.Errors) > 0 {
		fmt.Println(sectionStyle.Render(fmt.Sprintf("SKIPPED RECORDS (%d)", len(f.Errors))))
		for _, re := range f.Errors {
			fmt.Println(dimStyle.Render(fmt.Sprintf("  [%d] %v", re.Index, re.Err)))
		}
	}
	fmt.Println()
}

// postToSlack sends one compact report per check that found anything, plus a
// plain-text digest of stale products.
func postToSlack(slack *notifier.SlackClient, f app.Findings, logger *slog.Logger) {
	dispatch := func(check string, records []map[string]any) {
		if len(records) == 0 {
			return
		}
		if err := slack.SendCheckReport(check, records); err != nil {
			logger.Error("slack delivery failed", "check", check, "error", err)
		}
	}

	dispatch("stale", classify.Project(f.Stale,
		[]string{"index", "name", "status", "duration", "created_at"}))
	dispatch("name-disc", classify.Project(f.Violations,
		[]string{"index", "provided_name", "expected_name", "email", "reason"}))
	dispatch("unauthorized", classify.Project(f.Unauthorized,
		[]string{"index", "email", "reason"}))
	dispatch("launches", classify.Project(f.Aggregates,
		[]string{"index", "email", "product_count"}))

	if len(f.Stale) > 0 {
		fields := []string{"name", "duration", "status"}
		records := classify.Project(f.Stale, fields)
		if err := slack.SendText(notifier.FormatRecords(records, fields)); err != nil {
			logger.Error("slack delivery failed", "check", "stale-digest", "error", err)
		}
	}
}
