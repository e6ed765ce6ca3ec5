package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/disc/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		recs, err := d.store.Results().List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		return newRenderer(cmd, d.lang).History(cmd.OutOrStdout(), format, recs)
	},
}

var showCmd = &cobra.Command{
	Use:   "show [RESULT_ID]",
	Short: "Show one saved result (default: the latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		var id string
		if len(args) == 1 {
			id = args[0]
		}
		rec, err := d.findResult(cmd.Context(), id)
		if err != nil {
			return err
		}
		return newRenderer(cmd, d.lang).Profile(cmd.OutOrStdout(), format, report.ProfileFromRecord(d.lang, rec))
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results (0 for all)")
	historyCmd.Flags().String("format", "text", "Output format: "+strings.Join(report.Formats(), ", "))
	showCmd.Flags().String("format", "text", "Output format: "+strings.Join(report.Formats(), ", "))
	historyCmd.AddCommand(showCmd)
}
