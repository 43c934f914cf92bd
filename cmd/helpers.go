package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ziadkadry99/blockdeco/internal/config"
	"github.com/ziadkadry99/blockdeco/internal/loader"
	"github.com/ziadkadry99/blockdeco/internal/source"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `blockdeco init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newPipeline builds the loader and markdown renderer for the enabled blocks.
func newPipeline(cfg *config.Config, logger *log.Logger) (*loader.Loader, *source.Renderer, error) {
	l, err := loader.Default(cfg.Blocks, loader.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	r := source.New(source.Options{
		Blocks:         cfg.Blocks,
		HighlightStyle: cfg.HighlightStyle,
	})
	return l, r, nil
}
