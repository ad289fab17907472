package config

import "time"

// FileName is the config file looked up in the working directory.
const FileName = "genesis.yml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GENESIS_"

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Language:        "en",
		ReflectionDelay: 1200 * time.Millisecond,
		MilestoneEvery:  10,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}
