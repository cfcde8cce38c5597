package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudopsio/catalogwatch/internal/app"
)

var (
	notifyTo    string
	notifyCheck string
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send an ad-hoc notification email for a check",
	Long: `Send the canned email for a check discriminator
(stale | unauthorized | launches | name-disc | default).

Example:
  catalogwatch notify --to jane@corp.io --check stale --email-sender ops@corp.io`,
	Run: func(cmd *cobra.Command, args []string) {
		if notifyTo == "" {
			fmt.Println("Error: --to is required")
			os.Exit(1)
		}
		if settings.EmailSender == "" {
			fmt.Println("Error: --email-sender is required to send mail")
			os.Exit(1)
		}

		logger := app.NewLogger(settings.JSONLogs, settings.Verbose)
		ctx := context.Background()

		clients, err := app.BuildClients(ctx, settings, logger)
		if err != nil {
			fmt.Printf("Error wiring clients: %v\n", err)
			os.Exit(1)
		}
		if clients.Email == nil {
			fmt.Println("Error: email delivery is not configured")
			os.Exit(1)
		}

		if err := clients.Email.SendCheckEmail(ctx, notifyTo, notifyCheck); err != nil {
			fmt.Printf("Error sending email: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Sent %q notification to %s\n", notifyCheck, notifyTo)
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().StringVar(&notifyTo, "to", "", "Recipient email address")
	notifyCmd.Flags().StringVar(&notifyCheck, "check", "default", "Check discriminator")
}
