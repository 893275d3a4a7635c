package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/binstash/internal/logger"
	"github.com/glorpus-work/binstash/pkg/model"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "fetch <artifact>...",
		Short: "Fetch artifacts into the local cache",
		Long: "Resolve the named artifacts from the manifest, fetch any that are " +
			"missing from the cache and print the materialized paths.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, manifestPath, args)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "binstash.json", "manifest file describing the artifacts")

	return cmd
}

func runFetch(cmd *cobra.Command, manifestPath string, names []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manifest, err := model.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	if err := manifest.CheckVersion(Version); err != nil {
		return err
	}

	c, err := openCache(cfg)
	if err != nil {
		return err
	}
	orch := buildOrchestrator(cfg, c)

	for _, name := range names {
		entry, err := manifest.Get(name)
		if err != nil {
			return err
		}
		dir, err := orch.EnsureArtifact(cmd.Context(), entry)
		if err != nil {
			return err
		}
		logger.Success("artifact ready", logger.Fields{"name": name})
		fmt.Fprintln(cmd.OutOrStdout(), orch.ExecutablePath(dir, entry))
	}

	return nil
}
