package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/autoprobe/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	baseURL      string
	delaySeconds float64
	summaryFile  string
	namesFile    string
)

var rootCmd = &cobra.Command{
	Use:   "autoprobe",
	Short: "Autocomplete API name explorer",
	Long: `autoprobe enumerates every name an undocumented autocomplete API can
return, across the v1, v2 and v3 endpoints.

Each endpoint is explored by prefix expansion:
  - The empty query is tried first
  - Then every single letter a..z
  - Then every two-letter pair aa..zz when the API looks result-capped

Results are written to a summary file and a names file. Running without a
subcommand is the same as "autoprobe explore".`,
	Version:      Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Set here rather than in the literal: runExplore reads rootCmd flags.
	rootCmd.RunE = runExplore

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (built-in defaults when empty)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Target and pacing overrides
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "",
		"Override the API base URL")
	rootCmd.PersistentFlags().Float64Var(&delaySeconds, "delay", config.DefaultRequestDelaySeconds,
		"Override the pause in seconds after each prefix query")

	// Output overrides
	rootCmd.PersistentFlags().StringVar(&summaryFile, "summary-file", "",
		"Override the summary output file")
	rootCmd.PersistentFlags().StringVar(&namesFile, "names-file", "",
		"Override the names output file")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the CLI flag override values. The delay is only
// set when the flag was given explicitly.
func GetCLIOverrides() config.Overrides {
	o := config.Overrides{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		BaseURL:     baseURL,
		SummaryFile: summaryFile,
		NamesFile:   namesFile,
	}
	if rootCmd.PersistentFlags().Changed("delay") {
		d := delaySeconds
		o.DelaySeconds = &d
	}
	return o
}

// loadConfig loads the config file, applies flag overrides and validates.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(GetCLIOverrides())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
