package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "disc",
	Short: "DISC personality assessment",
	Long: "disc scores a 20-question DISC personality assessment in the terminal,\n" +
		"keeps a history of results and produces certificates.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides DISC_DB env var)")
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/disc/config.yaml, then ./.discrc.yaml)")
	flags.String("lang", "", "Language: en or es (default: saved preference, then locale)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-file", "", `Log file ("-" for stderr; default under the data directory)`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(certificateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
