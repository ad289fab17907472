package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/genesis/internal/logging"
	"github.com/abhisek/genesis/internal/server"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring engine as a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, openOpts{store: true})
		if err != nil {
			return err
		}
		defer d.Close()

		srv := server.New(server.Config{
			Addr:     d.cfg.Server.Addr,
			AllowAll: d.cfg.Server.AllowAllOrigins,
		}, d.reg, d.engine, d.seq, d.store, logging.New("server"))

		// Graceful shutdown.
		ctx := cmd.Context()
		stopped := make(chan struct{})
		go func() {
			defer close(stopped)
			<-ctx.Done()
			d.logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				d.logger.Warn("shutdown failed", "error", err)
			}
		}()

		if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		<-stopped
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from server.addr)")
	serveCmd.Flags().Bool("allow-all-origins", false, "Allow every CORS origin")
}
