package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/binstash/internal/logger"
	"github.com/glorpus-work/binstash/pkg/cache"
)

// NewCacheCmd creates the cache command with subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
		Long:  "Show information about and clean the local artifact cache",
	}

	cmd.AddCommand(
		newCacheDirCmd(),
		newCacheInfoCmd(),
		newCacheCleanCmd(),
	)

	return cmd
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show cache directory path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cliCache()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Dir())
			return nil
		},
	}
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cliCache()
			if err != nil {
				return err
			}
			info, err := c.GetInfo()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cache Directory: %s\n", info.Directory)
			fmt.Fprintf(cmd.OutOrStdout(), "Artifacts: %d files, %d bytes\n", info.ArtifactFiles, info.ArtifactSize)
			fmt.Fprintf(cmd.OutOrStdout(), "Lock Files: %d\n", info.LockFiles)
			return nil
		},
	}
}

func newCacheCleanCmd() *cobra.Command {
	var (
		locks     bool
		artifacts bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the artifact cache",
		Long:  "Remove cached artifacts and/or lock metadata to free up disk space",
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := cliCache()
			if err != nil {
				return err
			}
			result, err := c.Clean(cache.CleanOptions{Locks: locks, Artifacts: artifacts})
			if err != nil {
				return err
			}
			logger.Success("cache cleaned", logger.Fields{
				"artifact_bytes": result.ArtifactFreed,
				"lock_bytes":     result.LockFreed,
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&locks, "locks", false, "clean only lock metadata")
	cmd.Flags().BoolVar(&artifacts, "artifacts", false, "clean only cached artifacts")

	return cmd
}

func cliCache() (*cache.Cache, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openCache(cfg)
}
