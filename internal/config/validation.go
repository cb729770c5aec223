package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateTarget()...)
	errors = append(errors, c.validateProbe()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateTarget() ValidationErrors {
	var errors ValidationErrors

	if c.Target.BaseURL == "" {
		return append(errors, ValidationError{
			Field:   "target.base_url",
			Message: "base_url is required",
		})
	}

	u, err := url.Parse(c.Target.BaseURL)
	if err != nil {
		return append(errors, ValidationError{
			Field:   "target.base_url",
			Message: fmt.Sprintf("invalid URL: %v", err),
		})
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, ValidationError{
			Field:   "target.base_url",
			Message: "scheme must be 'http' or 'https'",
		})
	}
	if u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "target.base_url",
			Message: "host is required",
		})
	}
	if u.RawQuery != "" {
		errors = append(errors, ValidationError{
			Field:   "target.base_url",
			Message: "base_url must not carry a query string",
		})
	}

	return errors
}

func (c *Config) validateProbe() ValidationErrors {
	var errors ValidationErrors

	if c.Probe.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "probe.timeout_seconds",
			Message: "timeout_seconds must be positive",
		})
	}

	if c.Probe.MaxAttempts <= 0 {
		errors = append(errors, ValidationError{
			Field:   "probe.max_attempts",
			Message: "max_attempts must be at least 1",
		})
	}

	if c.Probe.RateLimitWaitSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "probe.rate_limit_wait_seconds",
			Message: "rate_limit_wait_seconds cannot be negative",
		})
	}

	if c.Probe.RequestDelaySeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "probe.request_delay_seconds",
			Message: "request_delay_seconds cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(c.Output.SummaryFile) == "" {
		errors = append(errors, ValidationError{
			Field:   "output.summary_file",
			Message: "summary_file is required",
		})
	}

	if strings.TrimSpace(c.Output.NamesFile) == "" {
		errors = append(errors, ValidationError{
			Field:   "output.names_file",
			Message: "names_file is required",
		})
	}

	if c.Output.SummaryFile != "" && c.Output.SummaryFile == c.Output.NamesFile {
		errors = append(errors, ValidationError{
			Field:   "output.names_file",
			Message: "names_file must differ from summary_file",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	errors = append(errors, validateLogOutput(c.Logging.Output)...)

	return errors
}

// validateLogOutput checks that a log file path can be opened for append:
// its directory must exist and the path must not be a directory.
func validateLogOutput(output string) ValidationErrors {
	switch output {
	case "", "stdout", "stderr":
		return nil
	}

	dir := filepath.Dir(output)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ValidationErrors{{
			Field:   "logging.output",
			Message: fmt.Sprintf("log directory %q does not exist", dir),
		}}
	}

	if info, err := os.Stat(output); err == nil {
		if info.IsDir() {
			return ValidationErrors{{
				Field:   "logging.output",
				Message: fmt.Sprintf("%q is a directory", output),
			}}
		}
		if info.Mode().Perm()&0o222 == 0 {
			return ValidationErrors{{
				Field:   "logging.output",
				Message: fmt.Sprintf("%q is not writable", output),
			}}
		}
	}

	return nil
}
