package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/genesis/internal/adaptive"
	"github.com/abhisek/genesis/internal/config"
	"github.com/abhisek/genesis/internal/i18n"
	"github.com/abhisek/genesis/internal/logging"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/scoring"
	"github.com/abhisek/genesis/internal/store"
	"github.com/abhisek/genesis/internal/tables"
)

// openOpts selects what a command needs opened.
type openOpts struct {
	store bool
	// logToFile keeps log output off the terminal while the TUI owns it.
	logToFile bool
}

// deps holds everything a command builds from config.
type deps struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *store.Store // nil unless openOpts.store
	dbPath  string
	reg     *registry.Registry
	tables  *tables.Tables
	engine  *scoring.Engine
	seq     *adaptive.Sequencer
	catalog *i18n.Catalog
	closers []io.Closer
}

func openDeps(cmd *cobra.Command, opts openOpts) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg}

	if opts.store || opts.logToFile {
		d.dbPath, err = resolveDBPath(cfg)
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}

	var logOut io.Writer
	if opts.logToFile {
		path := cfg.Log.File
		if path == "" {
			path = filepath.Join(filepath.Dir(d.dbPath), "genesis.log")
		}
		f, err := logging.OpenFile(path)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, f)
		logOut = f
	}
	level, _ := logging.ParseLevel(cfg.Log.Level)
	logging.Init(level, cfg.Log.Format, logOut)
	d.logger = logging.New("cli")

	lang := cfg.Language
	if opts.store {
		st, err := store.Open(d.dbPath, logging.New("store"))
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		d.store = st
		d.closers = append(d.closers, st)

		// An explicit --lang becomes the stored preference.
		if f := cmd.Flags().Lookup("lang"); f != nil && f.Changed {
			if err := st.SaveLanguage(cmd.Context(), lang); err != nil {
				d.logger.Warn("save language failed", "error", err)
			}
		} else {
			lang = st.Language(cmd.Context(), lang)
		}
	}

	d.catalog, err = i18n.Load(lang, logging.New("i18n"))
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	d.reg = registry.Default()
	d.tables = tables.Default()
	d.engine = scoring.New(d.tables, time.Now, logging.New("scoring"))
	d.seq = adaptive.NewSequencer(d.reg, d.tables, logging.New("adaptive"))
	return d, nil
}

// Close releases the store and log file, newest first.
func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			slog.Warn("close failed", "error", err)
		}
	}
	d.closers = nil
}
