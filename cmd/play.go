package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/genesis/internal/app"
	"github.com/abhisek/genesis/internal/logging"
	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume a scan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("unlock-all", false, "Mark every node completed before starting")
}

// runApp opens the store, restores the session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	d, err := openDeps(cmd, openOpts{store: true, logToFile: true})
	if err != nil {
		return err
	}
	defer d.Close()

	ctl := session.New(d.reg, d.seq, d.engine, d.store, session.Options{
		Demo:            d.cfg.Demo,
		ReflectionDelay: d.cfg.ReflectionDelay,
		MilestoneEvery:  d.cfg.MilestoneEvery,
		Logger:          logging.New("session"),
	})
	ctl.Open(ctx)

	// Only play defines the flag; the root command reads false.
	if unlock, _ := cmd.Flags().GetBool("unlock-all"); unlock {
		ctl.UnlockAll(ctx)
	}

	d.logger.Info("starting tui", "db", d.dbPath, "lang", d.catalog.Lang(), "demo", d.cfg.Demo)
	return app.Run(ctx, &screen.Env{
		Session: ctl,
		Engine:  d.engine,
		Catalog: d.catalog,
		Store:   d.store,
		Logger:  logging.New("tui"),
	})
}
