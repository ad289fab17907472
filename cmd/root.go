package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/genesis/internal/config"
	"github.com/abhisek/genesis/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Archetype self-assessment scan",
	Long:  "Genesis: a terminal scan that maps answers and body signals onto an archetype, a state vector and a 7-day protocol.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to genesis.yml (default: ./genesis.yml or the user config dir)")
	pf.String("db", "", "Path to SQLite database file (overrides GENESIS_DB env var)")
	pf.String("lang", "", "Catalog language")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("log-format", "", "Log format: text or json")
	pf.Bool("demo", false, "Lock every node from 3 on")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(compatCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers genesis.yml, GENESIS_* variables and explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db or db_path (highest
// priority), then GENESIS_DB env var, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
