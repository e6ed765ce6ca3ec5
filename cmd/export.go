package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/disc/internal/account"
	"github.com/abhisek/disc/internal/i18n"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save a result to the configured spreadsheet",
	Long: "Save a result to the configured spreadsheet. Requires a signed-in user.\n" +
		"The save is simulated: the payload is validated and logged, no request is sent.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		user, err := d.accounts.RequireUser(ctx)
		if errors.Is(err, account.ErrNotSignedIn) {
			return errors.New(d.t(i18n.ExportLoginRequired))
		}
		if err != nil {
			return err
		}

		id, _ := cmd.Flags().GetString("result")
		rec, err := d.findResult(ctx, id)
		if err != nil {
			return err
		}
		if _, err := d.exporter.Export(ctx, user, rec); err != nil {
			return fmt.Errorf("%s: %w", d.t(i18n.ExportFailed), err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.t(i18n.ExportSuccess))
		return nil
	},
}

var exportConfigureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Set the spreadsheet script URL and token",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		url, _ := cmd.Flags().GetString("url")
		token, _ := cmd.Flags().GetString("token")
		if err := d.exporter.Configure(cmd.Context(), url, token); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Sheet configuration saved.")
		return nil
	},
}

var exportLogCmd = &cobra.Command{
	Use:   "log",
	Short: "List recorded export attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		id, _ := cmd.Flags().GetString("result")
		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := d.store.Exports().List(cmd.Context(), id, limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No exports recorded.")
			return nil
		}
		for _, e := range entries {
			line := fmt.Sprintf("%s  %-9s  %s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Status, shortID(e.ResultUID))
			if e.Error != "" {
				line += "  " + e.Error
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	exportCmd.Flags().String("result", "", "Result id or prefix (default: the latest)")

	exportConfigureCmd.Flags().String("url", "", "Apps Script URL (https://script.google.com/...)")
	exportConfigureCmd.Flags().String("token", "", "Shared secret sent with each payload")
	_ = exportConfigureCmd.MarkFlagRequired("url")

	exportLogCmd.Flags().String("result", "", "Only exports of this result id")
	exportLogCmd.Flags().Int("limit", 20, "Maximum number of entries (0 for all)")

	exportCmd.AddCommand(exportConfigureCmd)
	exportCmd.AddCommand(exportLogCmd)
}
