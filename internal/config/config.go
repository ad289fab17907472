// Package config loads genesis settings from defaults, an optional YAML
// file, GENESIS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/abhisek/genesis/internal/i18n"
	"github.com/abhisek/genesis/internal/logging"
)

// nestedSections are the config sections whose env keys need their first
// underscore turned into the koanf delimiter.
var nestedSections = []string{"log_", "server_"}

// DefaultPath returns genesis.yml in the working directory when present,
// otherwise the file under the user config directory.
func DefaultPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "genesis", FileName)
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (GENESIS_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// GENESIS_LOG_LEVEL -> log.level, GENESIS_DEMO -> demo.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range nestedSections {
		if strings.HasPrefix(key, section) {
			return strings.Replace(key, "_", ".", 1)
		}
	}
	return key
}

// ApplyFlags overlays flags the user set explicitly. Unknown or unchanged
// flags are ignored.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var errs []error
	str := func(name string, dst *string) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	str("db", &c.DBPath)
	str("lang", &c.Language)
	str("log-level", &c.Log.Level)
	str("log-format", &c.Log.Format)
	str("addr", &c.Server.Addr)

	if f := fs.Lookup("demo"); f != nil && f.Changed {
		v, err := fs.GetBool("demo")
		if err != nil {
			errs = append(errs, fmt.Errorf("flag demo: %w", err))
		}
		c.Demo = v
	}
	if f := fs.Lookup("allow-all-origins"); f != nil && f.Changed {
		v, err := fs.GetBool("allow-all-origins")
		if err != nil {
			errs = append(errs, fmt.Errorf("flag allow-all-origins: %w", err))
		}
		c.Server.AllowAllOrigins = v
	}
	return errors.Join(errs...)
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !slices.Contains(i18n.Languages(), c.Language) {
		return fmt.Errorf("invalid language %q: must be one of %s", c.Language, strings.Join(i18n.Languages(), ", "))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}
	if c.ReflectionDelay < 0 {
		return fmt.Errorf("reflection_delay must be non-negative")
	}
	if c.MilestoneEvery <= 0 {
		return fmt.Errorf("milestone_every must be positive")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
