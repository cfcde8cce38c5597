package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cloudopsio/catalogwatch/internal/app"
	"github.com/cloudopsio/catalogwatch/internal/report"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run a cycle and export findings (JSON, HTML)",
	Long: `Run one monitoring cycle and write the findings to disk: a JSON dump of
every classifier's records plus the rendered dashboard.

Default output directory: ./catalogwatch-out/`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := app.NewLogger(settings.JSONLogs, settings.Verbose)
		ctx := context.Background()

		clients, err := app.BuildClients(ctx, settings, logger)
		if err != nil {
			fmt.Printf("Error wiring sources: %v\n", err)
			os.Exit(1)
		}
		findings := app.RunCycle(ctx, settings, clients, logger)

		if err := os.MkdirAll(exportDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}

		jsonPath := filepath.Join(exportDir, "findings.json")
		raw, err := json.MarshalIndent(findings, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding findings: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(jsonPath, raw, 0644); err != nil {
			fmt.Printf("Error writing %s: %v\n", jsonPath, err)
			os.Exit(1)
		}

		htmlPath := filepath.Join(exportDir, "dashboard.html")
		if err := report.WriteFile(htmlPath, report.BuildData(findings, settings.Thresholds)); err != nil {
			fmt.Printf("Error writing %s: %v\n", htmlPath, err)
			os.Exit(1)
		}

		fmt.Println("Export complete.")
		fmt.Printf("  JSON: %s\n", jsonPath)
		fmt.Printf("  HTML: %s\n", htmlPath)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "out", "catalogwatch-out", "Output directory")
}
