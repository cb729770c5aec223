package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/autoprobe/internal/apiclient"
	"github.com/dbsmedya/autoprobe/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and show effective settings",
	Long: `Validate loads the configuration file, applies flag overrides and
checks the result without sending any request.

Checks performed:
  - Base URL is an absolute http or https URL without a query
  - Timeout and attempt count are positive, pauses are not negative
  - Output files are set and distinct
  - Log level and format are known

Example:
  autoprobe validate --config autoprobe.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(outputWriter, "❌ %v\n", err)
		return fmt.Errorf("configuration is invalid")
	}

	if configFile == "" {
		configFile = "(built-in defaults)"
	}

	printHeader("Configuration Validation")
	fmt.Fprintf(outputWriter, "Config file: %s\n\n", configFile)

	printSection("Target")
	fmt.Fprintf(outputWriter, "  Base URL:   %s\n", cfg.Target.BaseURL)
	fmt.Fprintf(outputWriter, "  User agent: %s\n", cfg.Target.UserAgent)
	client := apiclient.New(cfg.Target.BaseURL)
	for _, ep := range types.Endpoints() {
		fmt.Fprintf(outputWriter, "  %s: %s\n", ep.Version, client.URL(ep.Path, ""))
	}
	fmt.Fprintln(outputWriter)

	printSection("Probe")
	fmt.Fprintf(outputWriter, "  Timeout:         %s\n", cfg.Probe.Timeout())
	fmt.Fprintf(outputWriter, "  Max attempts:    %d\n", cfg.Probe.MaxAttempts)
	fmt.Fprintf(outputWriter, "  Rate limit wait: %s\n", cfg.Probe.RateLimitWait())
	fmt.Fprintf(outputWriter, "  Request delay:   %s\n", cfg.Probe.RequestDelay())
	fmt.Fprintln(outputWriter)

	printSection("Output")
	fmt.Fprintf(outputWriter, "  Summary file: %s\n", cfg.Output.SummaryFile)
	fmt.Fprintf(outputWriter, "  Names file:   %s\n", cfg.Output.NamesFile)
	fmt.Fprintln(outputWriter)

	printSection("Logging")
	fmt.Fprintf(outputWriter, "  Level:  %s\n", cfg.Logging.Level)
	fmt.Fprintf(outputWriter, "  Format: %s\n", cfg.Logging.Format)
	fmt.Fprintf(outputWriter, "  Output: %s\n", cfg.Logging.Output)
	fmt.Fprintln(outputWriter)

	fmt.Fprintln(outputWriter, "✅ Configuration is valid")
	return nil
}
