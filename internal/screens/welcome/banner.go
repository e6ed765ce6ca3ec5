package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/ui/theme"
)

// letterArt holds one block letter per dimension, in D, I, S, C order.
var letterArt = [disc.DimensionCount][]string{
	{
		"██████╗ ",
		"██╔══██╗",
		"██║  ██║",
		"██║  ██║",
		"██████╔╝",
		"╚═════╝ ",
	},
	{
		"██╗",
		"██║",
		"██║",
		"██║",
		"██║",
		"╚═╝",
	},
	{
		"███████╗",
		"██╔════╝",
		"███████╗",
		"╚════██║",
		"███████║",
		"╚══════╝",
	},
	{
		" ██████╗",
		"██╔════╝",
		"██║     ",
		"██║     ",
		"╚██████╗",
		" ╚═════╝",
	},
}

// bannerWidth is the width of the full four-letter banner.
const bannerWidth = 36

// RenderBanner renders the first n letters of the DISC banner, each in its
// dimension color. Narrow terminals get a spaced single-line fallback.
func RenderBanner(width, n int) string {
	if n > disc.DimensionCount {
		n = disc.DimensionCount
	}
	dims := disc.AllDimensions()[:n]

	if width < bannerWidth+4 {
		parts := make([]string, 0, len(dims))
		for _, d := range dims {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.DimensionColor(d)).
				Bold(true).
				Render(d.Code()))
		}
		return strings.Join(parts, " ")
	}

	blocks := make([]string, 0, len(dims))
	for _, d := range dims {
		blocks = append(blocks, lipgloss.NewStyle().
			Foreground(theme.DimensionColor(d)).
			Render(strings.Join(letterArt[d], "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
