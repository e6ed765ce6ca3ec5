package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/disc/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize saved results",
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

		recs, err := d.store.Results().List(cmd.Context(), 0)
		if err != nil {
			return err
		}
		return newRenderer(cmd, d.lang).Stats(cmd.OutOrStdout(), format, report.ComputeStats(recs))
	},
}

func init() {
	statsCmd.Flags().String("format", "text", "Output format: "+strings.Join(report.Formats(), ", "))
}
