package app

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cloudopsio/catalogwatch/internal/audit"
	internalaws "github.com/cloudopsio/catalogwatch/internal/aws"
	"github.com/cloudopsio/catalogwatch/internal/catalog"
	"github.com/cloudopsio/catalogwatch/internal/classify"
	"github.com/cloudopsio/catalogwatch/internal/config"
	"github.com/cloudopsio/catalogwatch/internal/notifier"
	"github.com/cloudopsio/catalogwatch/internal/source"
)

// Findings is one cycle's classifier output over a single snapshot.
type Findings struct {
	GeneratedAt  time.Time
	Products     int
	Stale        []classify.StaleRecord
	Violations   []classify.NamingViolation
	Unauthorized []classify.UnauthorizedLaunch
	Aggregates   []classify.LaunchAggregate
	Summary      map[string]*classify.TypeSummary
	Errors       []classify.RecordError
}

// NewLogger builds the process logger. JSON output for machine consumers,
// text otherwise; verbose lowers the level to Debug.
func NewLogger(jsonLogs, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonLogs {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Classify runs the four classifiers and the summary over one snapshot. They
// share no state and each goroutine writes its own Findings field, so they
// run concurrently.
func Classify(products []catalog.Product, roster []catalog.User, cfg classify.Config, now time.Time) Findings {
	f := Findings{GeneratedAt: now, Products: len(products)}
	threshold := classify.ThresholdInstant(now, cfg.StaleAfter)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		f.Stale, f.Errors = classify.FindStale(products, threshold, now)
	}()
	go func() {
		defer wg.Done()
		f.Violations = classify.FindNamingViolations(roster, products)
	}()
	go func() {
		defer wg.Done()
		f.Unauthorized = classify.FindUnauthorized(roster, products)
	}()
	go func() {
		defer wg.Done()
		f.Aggregates = classify.AggregateLaunches(products, cfg.LaunchThreshold)
	}()
	go func() {
		defer wg.Done()
		f.Summary = classify.Summarize(products, roster, cfg, now)
	}()
	wg.Wait()
	return f
}

// Clients bundles the wired collaborators for one process.
type Clients struct {
	AWS      *internalaws.Client
	Products source.Products
	Roster   source.Roster
	Slack    *notifier.SlackClient
	Email    *notifier.EmailClient
}

// BuildClients wires product and roster sources from the settings: mock
// snapshot, local files, or live AWS. The AWS session is only established
// when something actually needs it.
func BuildClients(ctx context.Context, cfg config.Settings, logger *slog.Logger) (*Clients, error) {
	c := &Clients{}
	if cfg.SlackWebhook != "" {
		c.Slack = notifier.NewSlackClient(cfg.SlackWebhook, cfg.SlackChannel)
	}

	if cfg.MockMode {
		logger.Info("running in mock mode, simulating catalog data")
		mock := internalaws.NewMockSource()
		c.Products = mock
		c.Roster = mock
		return c, nil
	}

	if cfg.ProductsFile != "" {
		c.Products = source.FileProducts{Path: cfg.ProductsFile}
	}
	if cfg.RosterFile != "" {
		c.Roster = source.FileRoster{Path: cfg.RosterFile}
	}

	needsAWS := c.Products == nil || c.Roster == nil || cfg.EmailSender != ""
	if needsAWS {
		client, err := internalaws.NewClient(ctx, cfg.Region)
		if err != nil {
			return nil, err
		}
		account, err := client.VerifyIdentity(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to AWS", "account", account, "region", cfg.Region)
		c.AWS = client

		if c.Products == nil {
			c.Products = internalaws.NewProductSource(client.Config)
		}
		if c.Roster == nil {
			c.Roster = internalaws.NewRosterSource(client.Config, cfg.RosterBucket, cfg.RosterKey)
		}
		if cfg.EmailSender != "" {
			c.Email = notifier.NewEmailClient(client.SES, cfg.EmailSender)
		}
	}
	return c, nil
}

// RunCycle fetches one snapshot and classifies it. Source failures degrade
// to empty data with an error log; per-record classification errors are
// logged and carried in the findings so consumers can surface them.
func RunCycle(ctx context.Context, cfg config.Settings, clients *Clients, logger *slog.Logger) Findings {
	products, err := clients.Products.FetchProducts(ctx)
	if err != nil {
		logger.Error("product fetch failed, classifying empty snapshot", "error", err)
		products = nil
	}
	roster, err := clients.Roster.FetchRoster(ctx)
	if err != nil {
		logger.Error("roster fetch failed, treating all launches as unauthorized-capable", "error", err)
		roster = nil
	}

	findings := Classify(products, roster, classify.Config{
		StaleAfter:      cfg.Thresholds.StaleAfter,
		LaunchThreshold: cfg.Thresholds.LaunchThreshold,
	}, time.Now().UTC())

	for _, re := range findings.Errors {
		logger.Warn("skipped malformed product record", "index", re.Index, "error", re.Err)
	}

	audit.LogCycle(findings.Products, len(findings.Stale), len(findings.Violations),
		len(findings.Unauthorized), len(findings.Aggregates), len(findings.Errors))

	return findings
}
