package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the binstash release version. Overridden at build time via
// -ldflags "-X github.com/glorpus-work/binstash/internal/cli.Version=...".
var Version = "0.1.0"

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the binstash version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "binstash %s\n", Version)
		},
	}
}
