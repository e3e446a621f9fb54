package config

import (
	"fmt"

	"github.com/Klingon-tech/seedforge/internal/log"
)

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	switch cfg.KDF.Profile {
	case ProfileStandard, ProfileLight:
	case "":
		cfg.KDF.Profile = ProfileStandard
	default:
		return fmt.Errorf("kdf.profile must be %q or %q", ProfileStandard, ProfileLight)
	}
	if err := cfg.KDFParams().Validate(); err != nil {
		return fmt.Errorf("kdf: %w", err)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, error, or disabled")
	}
	return nil
}
