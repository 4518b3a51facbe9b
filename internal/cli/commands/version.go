package commands

import (
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := FromContext(cmd.Context()).Renderer
			r.Printf("rulelint %s (built %s, commit %s)\n", Version, BuildDate, GitCommit)
			return nil
		},
	}
}
