package cmd

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/autoprobe/internal/config"
	"github.com/dbsmedya/autoprobe/internal/types"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the autoprobe build, its default target and the endpoints it explores.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	paths := make([]string, 0, 3)
	for _, ep := range types.Endpoints() {
		paths = append(paths, ep.Path)
	}

	cmd.Printf("autoprobe %s (commit %s, %s %s/%s)\n",
		Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	cmd.Printf("  Default target: %s\n", config.DefaultBaseURL)
	cmd.Printf("  Endpoints:      %s\n", strings.Join(paths, ", "))
}
