package config

import (
	"fmt"
	"os"
)

// Flags holds command-line overrides. The CLI binds these to its
// persistent flags.
type Flags struct {
	Config string

	// KDF
	KDFProfile     string
	KDFMemory      uint32
	KDFIterations  uint32
	KDFParallelism uint8

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Explicitly-set bool flags (for true/false overrides).
	SetLogJSON bool
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.KDFProfile != "" {
		cfg.KDF.Profile = KDFProfile(f.KDFProfile)
	}
	if f.KDFMemory != 0 {
		cfg.KDF.Memory = f.KDFMemory
	}
	if f.KDFIterations != 0 {
		cfg.KDF.Iterations = f.KDFIterations
	}
	if f.KDFParallelism != 0 {
		cfg.KDF.Parallelism = f.KDFParallelism
	}

	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// Load loads configuration with the following precedence:
//  1. Command-line flags (highest)
//  2. Config file
//  3. Defaults (lowest)
func Load(f *Flags) (*Config, error) {
	if f == nil {
		f = &Flags{}
	}
	cfg := Default()

	configPath := f.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		// An explicitly named file must exist.
		return nil, fmt.Errorf("loading config file: %w", err)
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	ApplyFlags(cfg, f)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
