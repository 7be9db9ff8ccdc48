package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	devenv "wishlist-scraper/dev/env"
	"wishlist-scraper/lib/restyutil"
	"wishlist-scraper/lib/scrapers/siriust/core"
	"wishlist-scraper/lib/serviceutil"
	"wishlist-scraper/lib/telemetry"

	"github.com/spf13/cobra"
)

const serviceName = "wishlist-cli"

var (
	verbose    bool
	configPath string
	dbPath     string
	tel        telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "wishlist-cli",
	Short: "wishlist-cli scrapes the profile and wishlist of a siriust.ru account into SQLite.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), serviceName)
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}

		if verbose {
			setupRestyDump()
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var shutdownTelemetry = func(ctx context.Context) error {
	return tel.Shutdown(ctx)
}

// setupRestyDump writes every HTTP exchange of the run into <dev_state>/resty
// when the command is run from inside the workspace.
func setupRestyDump() {
	statedir, err := devenv.StateDir()
	if err != nil {
		slog.Debug("not in a workspace, http exchanges will not be dumped", "err", err)
		return
	}
	out, err := restyutil.NewFilesystemOutput(filepath.Join(statedir, "resty"))
	if err != nil {
		slog.Warn("failed to create http dump directory", "err", err)
		return
	}
	core.SetRestyInstrumentOutput(out)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output and dump http exchanges")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "path to the json5 config")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the sqlite database, overrides the config")

	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(initDbCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(forgetCmd)
}

// run executes the command line, telemetry is flushed whether or not the
// command fails.
func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)

	shutdownErr := shutdownTelemetry(context.Background())
	if shutdownErr != nil {
		slog.Warn("failed to shutdown telemetry", "err", shutdownErr)
	}
	return err
}

func Execute() {
	ctx, cancel := serviceutil.SignalContext()
	err := run(ctx)
	cancel()
	if err != nil {
		serviceutil.Fatal("wishlist-cli failed", err)
	}
}
