package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/report"
)

const maxRenderWidth = 120

// newRenderer renders Markdown through glamour when stdout is a terminal.
func newRenderer(cmd *cobra.Command, lang i18n.Lang) *report.Renderer {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return report.NewRenderer(lang)
	}
	width := 80
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		width = min(w, maxRenderWidth)
	}
	return report.NewRenderer(lang, report.WithTerminal(width))
}

func formatFlag(cmd *cobra.Command) (report.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	return report.ParseFormat(s)
}
