package config

const (
	defaultConfigPath = "~/.config/coverart/config.toml"
	defaultLogLevel   = "info"
	defaultOutputDir  = "."
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level: defaultLogLevel,
		},
		Extract: Extract{
			OutputDir: defaultOutputDir,
		},
	}
}
