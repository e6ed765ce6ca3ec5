package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/certificate"
	"github.com/abhisek/disc/internal/i18n"
)

var certificateCmd = &cobra.Command{
	Use:   "certificate",
	Short: "Write a PDF certificate for a saved result",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		id, _ := cmd.Flags().GetString("result")
		rec, err := d.findResult(cmd.Context(), id)
		if err != nil {
			return err
		}

		cert := certificate.New(rec.UserName, rec.CompletedAt, d.lang, rec.Result())
		path, err := cert.WriteFile(d.cfg.OutputDir)
		if err != nil {
			return err
		}
		d.logger.Info("certificate written", zap.String("result_id", rec.UID), zap.String("path", path))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, d.t(i18n.CertWritten)+"\n", path)
		fmt.Fprintln(out, cert.ShareText())
		return nil
	},
}

func init() {
	certificateCmd.Flags().String("result", "", "Result id or prefix (default: the latest)")
	certificateCmd.Flags().String("out", "", "Directory to write the certificate to (default: output_dir)")
}
