// Package config provides configuration structures and loading for autoprobe.
package config

import "time"

// Config represents the complete application configuration.
type Config struct {
	Target  TargetConfig  `yaml:"target" mapstructure:"target"`
	Probe   ProbeConfig   `yaml:"probe" mapstructure:"probe"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// TargetConfig identifies the autocomplete service. Endpoint paths are fixed
// and not part of the configuration.
type TargetConfig struct {
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
}

// ProbeConfig holds request pacing and retry settings.
type ProbeConfig struct {
	TimeoutSeconds       float64 `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	MaxAttempts          int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	RateLimitWaitSeconds float64 `yaml:"rate_limit_wait_seconds" mapstructure:"rate_limit_wait_seconds"`
	RequestDelaySeconds  float64 `yaml:"request_delay_seconds" mapstructure:"request_delay_seconds"`
}

// OutputConfig names the two result files.
type OutputConfig struct {
	SummaryFile string `yaml:"summary_file" mapstructure:"summary_file"`
	NamesFile   string `yaml:"names_file" mapstructure:"names_file"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

const (
	DefaultBaseURL     = "http://35.200.185.69:8000"
	DefaultUserAgent   = "autoprobe"
	DefaultSummaryFile = "api_results.json"
	DefaultNamesFile   = "extracted_names.json"

	DefaultRequestDelaySeconds = 0.5
)

// DefaultConfig returns a Config with the built-in probing constants.
func DefaultConfig() *Config {
	return &Config{
		Target: TargetConfig{
			BaseURL:   DefaultBaseURL,
			UserAgent: DefaultUserAgent,
		},
		Probe: ProbeConfig{
			TimeoutSeconds:       5,
			MaxAttempts:          3,
			RateLimitWaitSeconds: 5,
			RequestDelaySeconds:  DefaultRequestDelaySeconds,
		},
		Output: OutputConfig{
			SummaryFile: DefaultSummaryFile,
			NamesFile:   DefaultNamesFile,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// Timeout returns the per-attempt request timeout.
func (p ProbeConfig) Timeout() time.Duration {
	return seconds(p.TimeoutSeconds)
}

// RateLimitWait returns the pause applied after a 429 response.
func (p ProbeConfig) RateLimitWait() time.Duration {
	return seconds(p.RateLimitWaitSeconds)
}

// RequestDelay returns the pause between consecutive prefix queries.
func (p ProbeConfig) RequestDelay() time.Duration {
	return seconds(p.RequestDelaySeconds)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
