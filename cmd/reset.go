package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the assessment in progress",
	Long:  "Discard the assessment in progress. With --history, also delete saved results and the export log.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		if err := d.store.Progress().ClearProgress(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Assessment progress cleared.")

		if all, _ := cmd.Flags().GetBool("history"); all {
			if err := d.store.Exports().Clear(ctx); err != nil {
				return err
			}
			n, err := d.store.Results().Clear(ctx)
			if err != nil {
				return err
			}
			d.logger.Info("history cleared", zap.Int64("results", n))
			fmt.Fprintf(out, "Deleted %d saved results.\n", n)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("history", false, "Also delete saved results and the export log")
}
