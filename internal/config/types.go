package config

// Config is the top-level blockdeco configuration, corresponding to .blockdeco.yml.
type Config struct {
	SiteName       string      `yaml:"site_name" koanf:"site_name"`
	ContentDir     string      `yaml:"content_dir" koanf:"content_dir"`
	OutputDir      string      `yaml:"output_dir" koanf:"output_dir"`
	Include        []string    `yaml:"include" koanf:"include"`
	Exclude        []string    `yaml:"exclude" koanf:"exclude"`
	Blocks         []string    `yaml:"blocks" koanf:"blocks"`
	HighlightStyle string      `yaml:"highlight_style" koanf:"highlight_style"`
	Build          BuildConfig `yaml:"build" koanf:"build"`
}

// BuildConfig holds settings for the build command.
type BuildConfig struct {
	// Clean removes the output directory before writing pages.
	Clean bool `yaml:"clean" koanf:"clean"`
	// FailOnUnknown turns blocks without a registered decorator into a build error.
	FailOnUnknown bool `yaml:"fail_on_unknown" koanf:"fail_on_unknown"`
}
