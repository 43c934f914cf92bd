package config

// KnownBlocks lists the block decorators blockdeco ships with.
var KnownBlocks = []string{"accordion", "hero", "tabs"}

// HighlightStyles are the chroma styles offered by the init wizard.
var HighlightStyles = []string{"github", "monokai", "dracula", "solarized-light", "nord"}

// DefaultExcludes are glob patterns excluded from the build by default.
var DefaultExcludes = []string{
	"_drafts/**",
	"**/README.md",
	"**/*.partial.html",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:       "Site",
		ContentDir:     "content",
		OutputDir:      "site",
		Include:        []string{"**/*.md", "**/*.html"},
		Exclude:        append([]string(nil), DefaultExcludes...),
		Blocks:         append([]string(nil), KnownBlocks...),
		HighlightStyle: "github",
		Build: BuildConfig{
			Clean:         false,
			FailOnUnknown: false,
		},
	}
}
