package config

import "time"

// Config is the top-level genesis configuration, corresponding to genesis.yml.
type Config struct {
	DBPath          string        `yaml:"db_path" koanf:"db_path"`
	Language        string        `yaml:"language" koanf:"language"`
	Demo            bool          `yaml:"demo" koanf:"demo"`
	ReflectionDelay time.Duration `yaml:"reflection_delay" koanf:"reflection_delay"`
	MilestoneEvery  int           `yaml:"milestone_every" koanf:"milestone_every"`
	Log             LogConfig     `yaml:"log" koanf:"log"`
	Server          ServerConfig  `yaml:"server" koanf:"server"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
	// File receives log output while the TUI owns the terminal. Empty means
	// a genesis.log next to the database.
	File string `yaml:"file" koanf:"file"`
}

// ServerConfig holds settings for `genesis serve`.
type ServerConfig struct {
	Addr            string `yaml:"addr" koanf:"addr"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
