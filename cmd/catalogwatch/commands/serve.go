package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudopsio/catalogwatch/internal/app"
	"github.com/cloudopsio/catalogwatch/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the monitoring dashboard",
	Long: `Serve the HTML dashboard. Every request fetches a fresh snapshot and
classifies it; POST /send-email dispatches a canned notification.

Example:
  catalogwatch serve --listen :5000 --email-sender ops@corp.io`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := app.NewLogger(settings.JSONLogs, settings.Verbose)
		ctx := context.Background()

		clients, err := app.BuildClients(ctx, settings, logger)
		if err != nil {
			fmt.Printf("Error wiring sources: %v\n", err)
			os.Exit(1)
		}

		server := web.NewServer(settings, clients, logger)
		if err := server.ListenAndServe(); err != nil {
			fmt.Printf("Server stopped: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&settings.ListenAddr, "listen", settings.ListenAddr, "Listen address")
}
