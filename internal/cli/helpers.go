// Package cli implements the binstash command-line interface.
package cli

import (
	"os"
	"time"

	"github.com/glorpus-work/binstash/internal/logger"
	"github.com/glorpus-work/binstash/pkg/archive"
	"github.com/glorpus-work/binstash/pkg/cache"
	"github.com/glorpus-work/binstash/pkg/config"
	"github.com/glorpus-work/binstash/pkg/download"
	"github.com/glorpus-work/binstash/pkg/orchestrator"
	"github.com/glorpus-work/binstash/pkg/provider"
)

// Flag values shared across commands, wired up by the root command.
var (
	ConfigPath *string
	Verbose    *bool
)

// DefaultConfigPath is where loadConfig looks when --config is not given.
const DefaultConfigPath = ".binstash.yaml"

func loadConfig() (*config.Config, error) {
	path := DefaultConfigPath
	if ConfigPath != nil && *ConfigPath != "" {
		path = *ConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	level := cfg.Settings.LogLevel
	if Verbose != nil && *Verbose {
		level = "debug"
	}
	logger.InitLogger(level)

	return cfg, nil
}

// openCache resolves the cache root for this process. Precedence:
// $BINSTASH_CACHE, then the config file's cache_dir, then the platform
// default.
func openCache(cfg *config.Config) (*cache.Cache, error) {
	if os.Getenv(cache.CacheEnvVar) == "" && cfg.Settings.CacheDir != "" {
		return cache.New(cfg.Settings.CacheDir), nil
	}
	return cache.NewDefault()
}

func buildOrchestrator(cfg *config.Config, c *cache.Cache) *orchestrator.Orchestrator {
	dl := download.NewManager(time.Duration(cfg.Settings.HTTPTimeout), cfg.Settings.UserAgent)
	return &orchestrator.Orchestrator{
		Cache:     c,
		Providers: provider.NewDefaultRegistry(dl),
		Extractor: archive.NewManager(),
	}
}
