package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/autoprobe/internal/config"
)

func TestGetConfigFile(t *testing.T) {
	withCleanFlags(t)

	tests := []struct {
		name     string
		cfgValue string
		want     string
	}{
		{name: "default config file", cfgValue: "", want: ""},
		{name: "custom config file", cfgValue: "/path/to/custom.yaml", want: "/path/to/custom.yaml"},
		{name: "config file with spaces", cfgValue: "/path/to/my config.yaml", want: "/path/to/my config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = tt.cfgValue
			assert.Equal(t, tt.want, GetConfigFile())
		})
	}
}

func TestFlagDefaults(t *testing.T) {
	assert.Equal(t, "", cfgFile)
	assert.Equal(t, "", logLevel)
	assert.Equal(t, "", logFormat)
	assert.Equal(t, "", baseURL)
	assert.Equal(t, config.DefaultRequestDelaySeconds, delaySeconds)
	assert.Equal(t, "", summaryFile)
	assert.Equal(t, "", namesFile)
}

func TestGetCLIOverrides(t *testing.T) {
	t.Run("delay unset when flag not given", func(t *testing.T) {
		withCleanFlags(t)
		logLevel = "debug"
		baseURL = "http://localhost:8000"

		o := GetCLIOverrides()
		assert.Equal(t, "debug", o.LogLevel)
		assert.Equal(t, "http://localhost:8000", o.BaseURL)
		assert.Nil(t, o.DelaySeconds)
	})

	t.Run("explicit zero delay is kept", func(t *testing.T) {
		withCleanFlags(t)
		require.NoError(t, rootCmd.PersistentFlags().Set("delay", "0"))

		o := GetCLIOverrides()
		require.NotNil(t, o.DelaySeconds)
		assert.Equal(t, float64(0), *o.DelaySeconds)
	})

	t.Run("output files", func(t *testing.T) {
		withCleanFlags(t)
		summaryFile = "out/summary.json"
		namesFile = "out/names.json"

		o := GetCLIOverrides()
		assert.Equal(t, "out/summary.json", o.SummaryFile)
		assert.Equal(t, "out/names.json", o.NamesFile)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("built-in defaults", func(t *testing.T) {
		withCleanFlags(t)
		cfgFile = ""

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultBaseURL, cfg.Target.BaseURL)
		assert.Equal(t, 3, cfg.Probe.MaxAttempts)
		assert.Equal(t, config.DefaultSummaryFile, cfg.Output.SummaryFile)
		assert.Equal(t, config.DefaultNamesFile, cfg.Output.NamesFile)
	})

	t.Run("flags override file", func(t *testing.T) {
		withCleanFlags(t)
		cfgFile = writeConfig(t, `
target:
  base_url: http://file-host:8000
probe:
  request_delay_seconds: 2
`)
		baseURL = "http://flag-host:9000"
		require.NoError(t, rootCmd.PersistentFlags().Set("delay", "0.1"))

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "http://flag-host:9000", cfg.Target.BaseURL)
		assert.Equal(t, 0.1, cfg.Probe.RequestDelaySeconds)
	})

	t.Run("file value kept when flag not given", func(t *testing.T) {
		withCleanFlags(t)
		cfgFile = writeConfig(t, `
probe:
  request_delay_seconds: 2
`)

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, float64(2), cfg.Probe.RequestDelaySeconds)
	})

	t.Run("invalid override rejected", func(t *testing.T) {
		withCleanFlags(t)
		baseURL = "ftp://example.com"

		_, err := loadConfig()
		require.Error(t, err)
		var verrs config.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, "target.base_url", verrs[0].Field)
	})

	t.Run("missing file", func(t *testing.T) {
		withCleanFlags(t)
		cfgFile = "/nonexistent/autoprobe.yaml"

		_, err := loadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"explore", "validate", "version"} {
		assert.True(t, names[want], "%s command should be added to root command", want)
	}
	assert.NotNil(t, rootCmd.RunE, "root command explores by default")
}

func TestExecuteExists(t *testing.T) {
	assert.NotNil(t, Execute)
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Commit)
}
