// Package config handles seedforge configuration.
//
// Settings are layered: built-in defaults, then the .conf file, then
// command-line flags. Only derivation cost and logging are configurable;
// the derivation pipeline itself has no knobs that change its meaning.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/seedforge/internal/derive"
)

// KDFProfile names a preset of Argon2id parameters.
type KDFProfile string

const (
	ProfileStandard KDFProfile = "standard" // 64 MiB, 3 passes, 4 lanes
	ProfileLight    KDFProfile = "light"    // 19 MiB, 2 passes, 1 lane
)

// Config holds runtime configuration.
type Config struct {
	// Dir holds the config file.
	Dir string `conf:"dir"`

	KDF KDFConfig

	Log LogConfig
}

// KDFConfig holds Argon2id settings. Zero values for the explicit fields
// mean "use the profile's value".
type KDFConfig struct {
	Profile     KDFProfile `conf:"kdf.profile"`
	Memory      uint32     `conf:"kdf.memory"` // KiB
	Iterations  uint32     `conf:"kdf.iterations"`
	Parallelism uint8      `conf:"kdf.parallelism"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// KDFParams resolves the effective Argon2id parameters.
func (c *Config) KDFParams() derive.Params {
	var p derive.Params
	switch c.KDF.Profile {
	case ProfileLight:
		p = derive.LightParams()
	default:
		p = derive.DefaultParams()
	}
	if c.KDF.Memory != 0 {
		p.Memory = c.KDF.Memory
	}
	if c.KDF.Iterations != 0 {
		p.Iterations = c.KDF.Iterations
	}
	if c.KDF.Parallelism != 0 {
		p.Parallelism = c.KDF.Parallelism
	}
	return p
}

// DefaultDir returns the platform-specific default configuration directory.
//
//	Linux:   ~/.seedforge
//	macOS:   ~/Library/Application Support/Seedforge
//	Windows: %APPDATA%\Seedforge
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seedforge"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Seedforge")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Seedforge")
		}
		return filepath.Join(home, "AppData", "Roaming", "Seedforge")
	default:
		return filepath.Join(home, ".seedforge")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.Dir, "seedforge.conf")
}
