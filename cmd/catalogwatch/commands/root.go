package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cloudopsio/catalogwatch/internal/config"
	"github.com/cloudopsio/catalogwatch/internal/version"
)

var (
	cfgFile  string
	settings = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "catalogwatch",
	Short: "Service Catalog account monitor",
	Long: `CatalogWatch - AWS Service Catalog Monitoring

Flags stale products, naming violations, unauthorized launches and
heavy launchers across an account's provisioned products.`,
	Version: version.Current,
	Run: func(cmd *cobra.Command, args []string) {
		// Bare invocation behaves like a headless scan.
		scanCmd.Run(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent Flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.catalogwatch.yaml)")
	rootCmd.PersistentFlags().StringVar(&settings.Region, "region", settings.Region, "AWS Region")
	rootCmd.PersistentFlags().StringVar(&settings.RosterBucket, "roster-bucket", settings.RosterBucket, "S3 bucket holding the user roster")
	rootCmd.PersistentFlags().StringVar(&settings.RosterKey, "roster-key", settings.RosterKey, "S3 key of the user roster JSON")
	rootCmd.PersistentFlags().StringVar(&settings.ProductsFile, "products-file", "", "Local products snapshot JSON (skips Service Catalog)")
	rootCmd.PersistentFlags().StringVar(&settings.RosterFile, "roster-file", "", "Local roster JSON (skips S3)")
	rootCmd.PersistentFlags().StringVar(&settings.SlackWebhook, "slack-webhook", "", "Slack Webhook URL")
	rootCmd.PersistentFlags().StringVar(&settings.SlackChannel, "slack-channel", "", "Slack channel override")
	rootCmd.PersistentFlags().StringVar(&settings.EmailSender, "email-sender", "", "Verified SES sender address")
	rootCmd.PersistentFlags().DurationVar(&settings.Thresholds.StaleAfter, "stale-after", settings.Thresholds.StaleAfter, "Age past which a product is stale")
	rootCmd.PersistentFlags().IntVar(&settings.Thresholds.LaunchThreshold, "launch-threshold", settings.Thresholds.LaunchThreshold, "Per-user launch count worth flagging")
	rootCmd.PersistentFlags().BoolVar(&settings.JSONLogs, "json-logs", false, "Emit JSON logs")
	rootCmd.PersistentFlags().BoolVarP(&settings.Verbose, "verbose", "v", false, "Enable debug logging")

	// Hidden Flags
	rootCmd.PersistentFlags().BoolVar(&settings.MockMode, "mock", false, "Run against a simulated catalog")
	rootCmd.PersistentFlags().MarkHidden("mock")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".catalogwatch.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("CATALOGWATCH")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return
	}

	// Flags win over the file: unmarshal the file first, then let every
	// explicitly set flag overwrite its field again.
	fromFlags := settings
	if err := viper.Unmarshal(&settings); err != nil {
		fmt.Printf("Warning: bad config file %s: %v\n", viper.ConfigFileUsed(), err)
		return
	}
	flags := rootCmd.PersistentFlags()
	for flagName, apply := range map[string]func(){
		"region":           func() { settings.Region = fromFlags.Region },
		"roster-bucket":    func() { settings.RosterBucket = fromFlags.RosterBucket },
		"roster-key":       func() { settings.RosterKey = fromFlags.RosterKey },
		"products-file":    func() { settings.ProductsFile = fromFlags.ProductsFile },
		"roster-file":      func() { settings.RosterFile = fromFlags.RosterFile },
		"slack-webhook":    func() { settings.SlackWebhook = fromFlags.SlackWebhook },
		"slack-channel":    func() { settings.SlackChannel = fromFlags.SlackChannel },
		"email-sender":     func() { settings.EmailSender = fromFlags.EmailSender },
		"stale-after":      func() { settings.Thresholds.StaleAfter = fromFlags.Thresholds.StaleAfter },
		"launch-threshold": func() { settings.Thresholds.LaunchThreshold = fromFlags.Thresholds.LaunchThreshold },
		"json-logs":        func() { settings.JSONLogs = fromFlags.JSONLogs },
		"verbose":          func() { settings.Verbose = fromFlags.Verbose },
		"mock":             func() { settings.MockMode = fromFlags.MockMode },
	} {
		if flags.Changed(flagName) {
			apply()
		}
	}
}

func renderHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s %s", version.AppName, version.Current)))
	fmt.Println(cmd.Long)
	fmt.Println()

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-18s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
