package config

import "time"

// Settings holds all monitor configuration. Flags override env, env
// overrides the config file, the file overrides these defaults.
type Settings struct {
	Region string `mapstructure:"region"`

	// Roster location in S3. Ignored when RosterFile is set.
	RosterBucket string `mapstructure:"roster_bucket"`
	RosterKey    string `mapstructure:"roster_key"`

	// Local-file fallbacks for offline runs.
	ProductsFile string `mapstructure:"products_file"`
	RosterFile   string `mapstructure:"roster_file"`

	SlackWebhook string `mapstructure:"slack_webhook"`
	SlackChannel string `mapstructure:"slack_channel"`
	EmailSender  string `mapstructure:"email_sender"`

	ListenAddr string `mapstructure:"listen_addr"`

	Thresholds ThresholdConfig `mapstructure:"thresholds"`

	MockMode bool `mapstructure:"mock"`
	JSONLogs bool `mapstructure:"json_logs"`
	Verbose  bool `mapstructure:"verbose"`
}

// ThresholdConfig holds the classification cutoffs.
type ThresholdConfig struct {
	StaleAfter      time.Duration `mapstructure:"stale_after"`
	LaunchThreshold int           `mapstructure:"launch_threshold"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Region:       "ap-south-1",
		RosterBucket: "catalogwatch",
		RosterKey:    "users.json",
		ListenAddr:   ":5000",
		Thresholds: ThresholdConfig{
			StaleAfter:      8 * time.Hour,
			LaunchThreshold: 2,
		},
	}
}
