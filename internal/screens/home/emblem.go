package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/ui/theme"
)

// quadrant lays the four dimensions out the way the DISC model is usually
// drawn: D top-left, I top-right, C bottom-left, S bottom-right.
var quadrant = [2][2]disc.Dimension{
	{disc.Dominance, disc.Influence},
	{disc.Compliance, disc.Steadiness},
}

// RenderEmblem draws the DISC quadrant. When highlight is valid that cell
// is filled with its color and the rest are dimmed.
func RenderEmblem(highlight disc.Dimension) string {
	rows := make([]string, 0, 2)
	for _, row := range quadrant {
		cells := make([]string, 0, 2)
		for _, d := range row {
			cells = append(cells, cell(d, highlight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cell(d, highlight disc.Dimension) string {
	style := lipgloss.NewStyle().
		Width(7).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Bold(true)

	switch {
	case !highlight.Valid():
		style = style.Foreground(theme.DimensionColor(d)).BorderForeground(theme.DimensionColor(d))
	case d == highlight:
		style = style.Foreground(theme.Text).
			Background(theme.DimensionColor(d)).
			BorderForeground(theme.DimensionColor(d))
	default:
		style = style.Foreground(theme.TextDim).BorderForeground(theme.Border)
	}
	return style.Render(d.Code())
}
