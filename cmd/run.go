package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/disc/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(cmd.Context(), app.Options{
		Store:       d.store,
		Session:     d.session(),
		Accounts:    d.accounts,
		Exporter:    d.exporter,
		Logger:      d.logger,
		Lang:        d.lang,
		AutoAdvance: d.cfg.AutoAdvanceDelay,
		OutputDir:   d.cfg.OutputDir,
		SkipSplash:  skipSplash,
	})
}
