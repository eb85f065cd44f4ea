// Package config loads modstack's application configuration.
//
// Configuration is layered: built-in defaults, then an optional YAML
// config file in the XDG config directory, then MODSTACK_* environment
// variables. Later layers win.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/modstack/pkg/errors"
)

// ConfigFileName is the app config file looked up in the XDG config dir
const ConfigFileName = "config.yaml"

// envPrefix namespaces the environment layer
const envPrefix = "MODSTACK_"

// Config holds the user-configurable settings
type Config struct {
	// ModsFileName is the backing list file's name inside each profile
	ModsFileName string `koanf:"mods_file_name"`

	// ExportExtension is the archive extension for exported profiles
	ExportExtension string `koanf:"export_extension"`

	// Reveal toggles the post-export file-browser reveal action
	Reveal bool `koanf:"reveal"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ModsFileName:    "mods.yml",
		ExportExtension: "zip",
		Reveal:          true,
	}
}

// Load builds the effective configuration from defaults, the config
// file (if present), and the environment.
func Load() (*Config, error) {
	return load(configFilePath())
}

// load is the testable core of Load, taking an explicit file path
func load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"mods_file_name":   defaults.ModsFileName,
		"export_extension": defaults.ExportExtension,
		"reveal":           defaults.Reveal,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to parse config file %s", path)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment configuration")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "configuration does not match the expected shape")
	}

	return &cfg, nil
}

// configFilePath returns the XDG-anchored config file location
func configFilePath() string {
	return filepath.Join(xdg.ConfigHome, "modstack", ConfigFileName)
}
