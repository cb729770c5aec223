package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// withCleanFlags restores every package-level flag after the test.
func withCleanFlags(t *testing.T) {
	t.Helper()

	origCfgFile := cfgFile
	origLogLevel := logLevel
	origLogFormat := logFormat
	origBaseURL := baseURL
	origDelay := delaySeconds
	origSummary := summaryFile
	origNames := namesFile

	t.Cleanup(func() {
		cfgFile = origCfgFile
		logLevel = origLogLevel
		logFormat = origLogFormat
		baseURL = origBaseURL
		delaySeconds = origDelay
		summaryFile = origSummary
		namesFile = origNames
		rootCmd.PersistentFlags().Lookup("delay").Changed = false
	})
}

// captureOutput redirects command output into a buffer for the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	setOutputWriter(&buf)
	t.Cleanup(resetOutputWriter)
	return &buf
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "autoprobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
