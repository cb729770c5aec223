package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/autoprobe/internal/apiclient"
	"github.com/dbsmedya/autoprobe/internal/explorer"
	"github.com/dbsmedya/autoprobe/internal/interrupt"
	"github.com/dbsmedya/autoprobe/internal/logger"
	"github.com/dbsmedya/autoprobe/internal/report"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore all autocomplete endpoints and save the names found",
	Long: `Explore queries /v1, /v2 and /v3 autocomplete endpoints in order and
collects every unique name they return.

Endpoints answering 404 are skipped. Rate-limited requests are retried after
a pause. Results are saved on completion and also when interrupted with
Ctrl+C or SIGTERM.

Example:
  autoprobe explore --config autoprobe.yaml
  autoprobe explore --base-url http://localhost:8000 --delay 0`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize logger
	base, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer base.Close()

	log := base.WithRun(uuid.NewString())
	log.Infow("Starting exploration",
		"base_url", cfg.Target.BaseURL,
		"config", GetConfigFile(),
	)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := interrupt.SetupSignalHandlerWithCallback(parent, func(sig os.Signal) {
		log.Warnw("Received shutdown signal - saving progress...", "signal", sig.String())
	})
	defer stop()

	client := apiclient.New(cfg.Target.BaseURL,
		apiclient.WithTimeout(cfg.Probe.Timeout()),
		apiclient.WithUserAgent(cfg.Target.UserAgent),
	)
	defer client.Close()

	store := report.NewFileStore(cfg.Output.SummaryFile, cfg.Output.NamesFile)
	opts := append(explorer.OptionsFromConfig(cfg.Probe), explorer.WithLogger(log))
	exp := explorer.New(client, store, opts...)

	if err := exp.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			log.Warnw("Exploration cancelled by user, partial results saved",
				"summary_file", cfg.Output.SummaryFile,
				"names_file", cfg.Output.NamesFile,
			)
			return nil
		}
		return fmt.Errorf("exploration failed: %w", err)
	}

	summary, _ := exp.Summary()
	report.PrintSummary(outputWriter, summary)
	fmt.Fprintf(outputWriter, "\nResults saved to %s and %s\n",
		cfg.Output.SummaryFile, cfg.Output.NamesFile)
	return nil
}
