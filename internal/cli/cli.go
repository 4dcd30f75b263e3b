// Package cli wires the pipeline's collaborators together behind a cobra
// command and runs one pass per invocation.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/karl0ss/downgrangefixtures-ical/internal/config"
	"github.com/karl0ss/downgrangefixtures-ical/internal/logger"
	"github.com/karl0ss/downgrangefixtures-ical/internal/notifier"
	"github.com/karl0ss/downgrangefixtures-ical/internal/scraper"
	"github.com/karl0ss/downgrangefixtures-ical/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig   string
	flagDataDir  string
	flagCalendar string
	flagDryRun   bool
	flagVerbose  bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures-ical",
		Short: "Regenerate the club's fixtures calendar when the league site changes",
		Long: `Scrapes the club's fixture list and league table, compares them against
the previous run's snapshots, and regenerates the iCal fixtures file when
anything changed. Sends a notification describing what changed.`,
		SilenceUsage: true,
		RunE:         runPipeline,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file (default: ./config.yaml if present)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory for snapshots (overrides config)")
	cmd.Flags().StringVar(&flagCalendar, "calendar", "", "Output path for the ICS file (overrides config)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of sending them")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

func runPipeline(cmd *cobra.Command, args []string) error {
	logger.Setup(flagVerbose, true)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagCalendar != "" {
		cfg.CalendarPath = flagCalendar
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing snapshot store: %w", err)
	}

	n, err := buildNotifier(cfg, flagDryRun)
	if err != nil {
		return err
	}

	pipeline := &Pipeline{
		Config:   cfg,
		Fetcher:  scraper.New(),
		Store:    store,
		Notifier: n,
	}
	return pipeline.Run()
}

// buildNotifier picks the notification transport. Dry-run mode and the
// "none" notifier both print messages instead of delivering them.
func buildNotifier(cfg *config.Config, dryRun bool) (notifier.Notifier, error) {
	if dryRun || cfg.Notifier == "none" {
		return notifier.NewDryRun(), nil
	}

	switch cfg.Notifier {
	case "telegram":
		return notifier.NewTelegram(cfg.TelegramToken, cfg.TelegramChat)
	case "twitter":
		return notifier.NewTwitter()
	}
	return nil, fmt.Errorf("unknown notifier %q", cfg.Notifier)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
