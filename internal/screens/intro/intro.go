package intro

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/quiz"
	"github.com/abhisek/disc/internal/session"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/layout"
	"github.com/abhisek/disc/internal/ui/theme"
)

// maxNameLength bounds the name field.
const maxNameLength = 40

// discoverKeys are the per-dimension teaser lines, in D, I, S, C order.
var discoverKeys = [disc.DimensionCount]i18n.Key{
	i18n.IntroDominance, i18n.IntroInfluence, i18n.IntroSteadiness, i18n.IntroCompliance,
}

type prefillMsg struct {
	Name string
}

// IntroScreen explains the assessment and asks for the user's name.
type IntroScreen struct {
	env    *screen.Env
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen.
func New(env *screen.Env) *IntroScreen {
	return &IntroScreen{
		env:   env,
		input: components.NewTextInput("", env.T(i18n.IntroNamePlaceholder), maxNameLength),
	}
}

func (s *IntroScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), s.prefill())
}

// prefill loads the name used last time so a retake does not retype it.
func (s *IntroScreen) prefill() tea.Cmd {
	if name := s.env.Session.UserName(); name != "" {
		return func() tea.Msg { return prefillMsg{Name: name} }
	}
	if s.env.Store == nil {
		return nil
	}
	progress := s.env.Store.Progress()
	logger := s.env.Log()
	return func() tea.Msg {
		name, err := progress.LastUserName(context.Background())
		if err != nil {
			logger.Warn("load last name", zap.Error(err))
		}
		return prefillMsg{Name: name}
	}
}

func (s *IntroScreen) Title() string {
	return s.env.T(i18n.IntroBadge)
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T(i18n.IntroStart)},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case prefillMsg:
		if s.input.Value() == "" && msg.Name != "" {
			s.input.SetValue(msg.Name)
		}
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s, s.start()
		}
		s.errMsg = ""
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *IntroScreen) start() tea.Cmd {
	err := s.env.Session.Start(context.Background(), s.input.Value())
	switch {
	case errors.Is(err, session.ErrNameTooShort):
		s.errMsg = s.env.T(i18n.IntroNameTooShort)
		return nil
	case err != nil:
		s.env.Log().Error("start assessment", zap.Error(err))
		s.errMsg = err.Error()
		return nil
	}
	next := quiz.New(s.env)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	env := s.env
	cw := min(width-4, 72)
	wrap := lipgloss.NewStyle().Width(cw)

	var b strings.Builder
	b.WriteString(theme.Badge.Render(env.T(i18n.IntroBadge)) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(env.T(i18n.IntroTitle)) + "\n\n")
	b.WriteString(wrap.Foreground(theme.TextDim).Render(env.T(i18n.IntroBody)) + "\n\n")

	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(env.T(i18n.IntroDiscover)) + "\n")
		for _, d := range disc.AllDimensions() {
			code := lipgloss.NewStyle().Foreground(theme.DimensionColor(d)).Bold(true).Render(d.Code())
			b.WriteString("  " + code + "  " + theme.Body.Render(env.T(discoverKeys[d])) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(env.T(i18n.IntroReady)) + "\n")
	b.WriteString(theme.Hint.Render(env.T(i18n.IntroNamePrompt)) + "\n\n")
	b.WriteString(s.input.View() + "\n")
	if s.errMsg != "" {
		b.WriteString(theme.ErrorText.Render(s.errMsg) + "\n")
	}
	b.WriteString("\n" + components.NewButton(env.T(i18n.IntroStart), true, nil).View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}
