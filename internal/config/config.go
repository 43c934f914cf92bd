package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".blockdeco.yml"

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "BLOCKDECO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BLOCKDECO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// BLOCKDECO_OUTPUT_DIR -> output_dir, BLOCKDECO_BUILD__CLEAN -> build.clean.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Comma-separated list overrides arrive from the environment as one string.
	cfg.Blocks = flattenList(cfg.Blocks)
	cfg.Include = flattenList(cfg.Include)
	cfg.Exclude = flattenList(cfg.Exclude)

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if _, ok := RelWithin(c.OutputDir, c.ContentDir); ok {
		return fmt.Errorf("output_dir %s must not equal or contain content_dir %s", c.OutputDir, c.ContentDir)
	}

	valid := make(map[string]bool, len(KnownBlocks))
	for _, name := range KnownBlocks {
		valid[name] = true
	}
	for _, name := range c.Blocks {
		if !valid[strings.ToLower(name)] {
			return fmt.Errorf("invalid block %q: must be one of %s", name, strings.Join(KnownBlocks, ", "))
		}
	}

	if c.HighlightStyle == "" {
		return fmt.Errorf("highlight_style is required")
	}

	return nil
}

// flattenList splits comma-separated entries and drops blanks.
func flattenList(in []string) []string {
	var out []string
	for _, v := range in {
		out = append(out, splitAndTrim(v)...)
	}
	return out
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
