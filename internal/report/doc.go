// Package report persists run results as JSON files and prints the
// end-of-run summary to the terminal.
package report
