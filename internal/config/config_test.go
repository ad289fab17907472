package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want %q", cfg.Language, "en")
	}
	if cfg.ReflectionDelay != 1200*time.Millisecond {
		t.Errorf("ReflectionDelay = %v, want 1.2s", cfg.ReflectionDelay)
	}
	if cfg.MilestoneEvery != 10 {
		t.Errorf("MilestoneEvery = %d, want 10", cfg.MilestoneEvery)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", FileName)

	original := DefaultConfig()
	original.DBPath = "/tmp/genesis.db"
	original.Demo = true
	original.ReflectionDelay = 2 * time.Second
	original.MilestoneEvery = 5
	original.Log.Format = "json"
	original.Server.AllowAllOrigins = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Addr != DefaultConfig().Server.Addr {
		t.Errorf("Server.Addr = %q, want default", cfg.Server.Addr)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GENESIS_DEMO", "true")
	t.Setenv("GENESIS_LOG_LEVEL", "debug")
	t.Setenv("GENESIS_SERVER_ADDR", ":9999")
	t.Setenv("GENESIS_REFLECTION_DELAY", "500ms")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Demo {
		t.Error("demo env override not applied")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Server.Addr = %q, want :9999", cfg.Server.Addr)
	}
	if cfg.ReflectionDelay != 500*time.Millisecond {
		t.Errorf("ReflectionDelay = %v, want 500ms", cfg.ReflectionDelay)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"GENESIS_DB_PATH":                  "db_path",
		"GENESIS_LOG_FILE":                 "log.file",
		"GENESIS_SERVER_ALLOW_ALL_ORIGINS": "server.allow_all_origins",
		"GENESIS_MILESTONE_EVERY":          "milestone_every",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db", "", "")
	fs.String("lang", "", "")
	fs.Bool("demo", false, "")
	fs.String("addr", "", "")
	if err := fs.Parse([]string{"--db", "x.db", "--demo"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg := DefaultConfig()
	if err := cfg.ApplyFlags(fs); err != nil {
		t.Fatalf("ApplyFlags: %v", err)
	}
	if cfg.DBPath != "x.db" {
		t.Errorf("DBPath = %q, want x.db", cfg.DBPath)
	}
	if !cfg.Demo {
		t.Error("Demo flag not applied")
	}
	if cfg.Language != "en" {
		t.Errorf("unchanged lang flag overrode Language: %q", cfg.Language)
	}
	if cfg.Server.Addr != DefaultConfig().Server.Addr {
		t.Errorf("unchanged addr flag overrode Server.Addr: %q", cfg.Server.Addr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown language", func(c *Config) { c.Language = "xx" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"negative delay", func(c *Config) { c.ReflectionDelay = -time.Second }},
		{"zero milestone", func(c *Config) { c.MilestoneEvery = 0 }},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
