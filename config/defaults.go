package config

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Dir: DefaultDir(),
		KDF: KDFConfig{
			Profile: ProfileStandard,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
