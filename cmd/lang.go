package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/store"
)

var langCmd = &cobra.Command{
	Use:       "lang [en|es]",
	Short:     "Show or set the preferred language",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(i18n.English), string(i18n.Spanish)},
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprintf(out, "%s (%s)\n", d.lang.DisplayName(), d.lang)
			return nil
		}

		lang, err := i18n.Parse(args[0])
		if err != nil {
			return err
		}
		if err := d.store.Settings().Set(cmd.Context(), store.KeyLanguage, lang.String()); err != nil {
			return fmt.Errorf("save language: %w", err)
		}
		fmt.Fprintf(out, i18n.T(lang, i18n.LanguageChanged)+"\n", lang.DisplayName())
		return nil
	},
}
