// Package config loads rulelint configuration from defaults, an
// optional rulelint.yaml file, RULELINT_ environment variables, and CLI
// flags, in that precedence order (flags highest).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default configuration values.
const (
	DefaultRulesDir  = ".cursor/rules"
	DefaultExtension = ".md"
	DefaultFormat    = ""
)

// Config file names, checked in order.
const (
	ConfigFileName    = "rulelint.yaml"
	ConfigFileNameAlt = "rulelint.yml"
)

// envPrefix is the environment variable prefix, e.g. RULELINT_RULES_DIR.
const envPrefix = "RULELINT_"

// Config holds the resolved run configuration.
type Config struct {
	RulesDir  string   `koanf:"rules_dir"`
	Extension string   `koanf:"extension"`
	Schema    string   `koanf:"schema"`
	Strict    bool     `koanf:"strict"`
	Fix       bool     `koanf:"fix"`
	Report    string   `koanf:"report_json"`
	Disable   []string `koanf:"disable"`
	Format    string   `koanf:"format"`
	Verbose   bool     `koanf:"verbose"`
}

// configFileUsed tracks the config file loaded by the last Load call.
var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > rulelint.yaml > rulelint.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves the configuration. cfgFile may name an explicit config
// file; flags may be nil. Only flags that were explicitly set override
// lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"rules_dir": DefaultRulesDir,
		"extension": DefaultExtension,
		"format":    DefaultFormat,
		"strict":    false,
		"fix":       false,
		"verbose":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: RULELINT_RULES_DIR -> rules_dir
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// Kebab-case flag names map to snake_case config keys.
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if
// any.
func GetConfigFileUsed() string {
	return configFileUsed
}
