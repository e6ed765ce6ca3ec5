package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/account"
	"github.com/abhisek/disc/internal/config"
	"github.com/abhisek/disc/internal/export"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/logging"
	"github.com/abhisek/disc/internal/session"
	"github.com/abhisek/disc/internal/store"
)

// deps are the services a command runs against.
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store
	accounts *account.Service
	exporter *export.Exporter
	lang     i18n.Lang
}

// loadDeps resolves configuration, opens the store and builds the services.
// Callers must Close the result.
func loadDeps(cmd *cobra.Command) (*deps, error) {
	ctx := cmd.Context()
	flags := cmd.Flags()

	file, _ := flags.GetString("config")
	cfg, err := config.Load(file, flags)
	if err != nil {
		return nil, err
	}

	logFile := cfg.Log.File
	if logFile == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		logFile = filepath.Join(dir, "disc.log")
	}
	logger, err := logging.New(cfg.Log.Level, logFile)
	if err != nil {
		return nil, err
	}

	dbPath := cfg.DB
	if dbPath == "" {
		if dbPath, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath), zap.String("config", cfg.File))

	d := &deps{
		cfg:      cfg,
		logger:   logger,
		store:    st,
		accounts: account.NewService(st.Settings(), account.WithLogger(logger)),
		exporter: export.NewExporter(st.Settings(), st.Exports(),
			export.WithLogger(logger),
			export.WithFallback(cfg.Sheet.Export()),
			export.WithDelay(cfg.Sheet.Delay)),
	}
	d.lang = d.resolveLang(ctx)
	return d, nil
}

// resolveLang prefers the flag or config, then the saved preference, then
// the locale.
func (d *deps) resolveLang(ctx context.Context) i18n.Lang {
	if lang, ok := d.cfg.Lang(); ok {
		return lang
	}
	saved, ok, err := d.store.Settings().Get(ctx, store.KeyLanguage)
	if err != nil {
		d.logger.Warn("read language preference", zap.Error(err))
	}
	if ok {
		if lang, err := i18n.Parse(saved); err == nil {
			return lang
		}
	}
	return i18n.DetectEnv()
}

func (d *deps) session() *session.Session {
	return session.New(session.Options{
		Storage:  d.store.Progress(),
		Results:  d.store.Results(),
		Logger:   d.logger,
		Language: d.lang.String(),
	})
}

func (d *deps) t(key i18n.Key) string {
	return i18n.T(d.lang, key)
}

func (d *deps) Close() {
	_ = d.logger.Sync()
	if err := d.store.Close(); err != nil {
		d.logger.Warn("close store", zap.Error(err))
	}
}

// findResult returns the result whose id starts with id, or the latest
// result when id is empty.
func (d *deps) findResult(ctx context.Context, id string) (*store.ResultRecord, error) {
	results := d.store.Results()
	if id == "" {
		rec, err := results.Latest(ctx)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, errors.New(d.t(i18n.ResultsNone))
		}
		return rec, nil
	}
	rec, err := results.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("no result with id %q", id)
	}
	return rec, nil
}
