package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	letterEvery  = 300 * time.Millisecond
	taglineAt    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen reveals the DISC banner letter by letter, then waits for a
// key before handing over to the home screen. Any key skips the animation.
type WelcomeScreen struct {
	lang         i18n.Lang
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(lang i18n.Lang, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		lang:        lang,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned || w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// letters returns how many banner letters are visible.
func (w *WelcomeScreen) letters() int {
	n := int(w.elapsed/letterEvery) + 1
	if n > disc.DimensionCount {
		n = disc.DimensionCount
	}
	return n
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width, w.letters())}

	if w.elapsed >= taglineAt {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render(i18n.T(w.lang, i18n.AppTitle)),
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(i18n.T(w.lang, i18n.AppTagline)),
		)
	}

	if w.elapsed >= totalDur {
		sections = append(sections, "",
			theme.Hint.Render(i18n.T(w.lang, i18n.HintContinue)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
