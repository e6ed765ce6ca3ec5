package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/results"
	"github.com/abhisek/disc/internal/store"
	"github.com/abhisek/disc/internal/ui/layout"
	"github.com/abhisek/disc/internal/ui/theme"
)

// pageSize is how many past results are loaded.
const pageSize = 50

type historyLoadedMsg struct {
	Results []*store.ResultRecord
	Err     error
}

// HistoryScreen lists past results newest first.
type HistoryScreen struct {
	env      *screen.Env
	results  []*store.ResultRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.Resumer = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{env: env}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.env.Store == nil {
		s.loaded = true
		return nil
	}
	repo := s.env.Store.Results()
	return func() tea.Msg {
		recs, err := repo.List(context.Background(), pageSize)
		return historyLoadedMsg{Results: recs, Err: err}
	}
}

// Resume reloads the list in case a retake added a result.
func (s *HistoryScreen) Resume() tea.Cmd {
	return s.Init()
}

func (s *HistoryScreen) Title() string {
	return s.env.T(i18n.HistoryTitle)
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T(i18n.HintDetails)},
		{Key: "↑↓", Description: s.env.T(i18n.HintNavigate)},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			if s.selected >= len(s.results) {
				s.selected = max(len(s.results)-1, 0)
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.results) {
				next := results.New(s.env, s.results[s.selected])
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  ...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + s.env.T(i18n.HistoryEmpty))
	}

	// Keep the selection on screen.
	visible := max(height-4, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(s.results))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %-24s %-20s %-12s %s",
		s.env.T(i18n.HistoryDate), s.env.T(i18n.HistoryName), s.env.T(i18n.HistoryPrimary), "D   I   S   C")) + "\n")

	for i := start; i < end; i++ {
		b.WriteString(s.row(i) + "\n")
	}

	return lipgloss.NewStyle().Width(width).Padding(0, 2).Render(b.String())
}

func (s *HistoryScreen) row(i int) string {
	rec := s.results[i]
	lang := s.env.Lang

	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		prefix = "> "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	scores := make([]string, 0, disc.DimensionCount)
	for _, d := range disc.AllDimensions() {
		scores = append(scores, lipgloss.NewStyle().
			Foreground(theme.DimensionColor(d)).
			Render(fmt.Sprintf("%-3d", rec.Scores.Get(d))))
	}

	line := fmt.Sprintf("%s%-24s %-20s %-12s ",
		prefix,
		truncate(i18n.FormatDate(lang, rec.CompletedAt), 24),
		truncate(rec.UserName, 20),
		i18n.DimensionName(lang, rec.Primary))
	return style.Render(line) + strings.Join(scores, " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
