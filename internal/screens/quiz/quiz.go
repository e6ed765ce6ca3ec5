package quiz

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/results"
	"github.com/abhisek/disc/internal/session"
	"github.com/abhisek/disc/internal/store"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/layout"
	"github.com/abhisek/disc/internal/ui/theme"
)

// advanceMsg fires after the auto-advance delay. A stale seq means the user
// moved on in the meantime and the message is ignored.
type advanceMsg struct {
	seq int
}

// completedMsg carries the stored result once the assessment is scored.
type completedMsg struct {
	Record *store.ResultRecord
	Err    error
}

// QuizScreen walks through the questionnaire one statement at a time.
type QuizScreen struct {
	env        *screen.Env
	choice     components.Likert
	seq        int
	completing bool
	errMsg     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the env's started or resumed session.
func New(env *screen.Env) *QuizScreen {
	s := &QuizScreen{env: env}
	s.refresh()
	return s
}

func (s *QuizScreen) refresh() {
	options := make([]string, 0, disc.MaxValue)
	for _, o := range disc.Options() {
		options = append(options, i18n.OptionLabel(s.env.Lang, o.Value))
	}
	s.choice = components.NewLikert(options, s.env.Session.CurrentValue())
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.env.T(i18n.IntroBadge)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	next := s.env.T(i18n.QuizNext)
	if s.env.Session.IsLast() {
		next = s.env.T(i18n.QuizFinish)
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: s.env.T(i18n.HintAnswer)},
		{Key: "←", Description: s.env.T(i18n.QuizPrevious)},
		{Key: "→", Description: next},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMadeMsg:
		return s, s.handleChoice(msg.Value)

	case advanceMsg:
		if msg.seq != s.seq || s.completing {
			return s, nil
		}
		return s, s.advance()

	case completedMsg:
		return s, s.handleCompleted(msg)

	case tea.KeyPressMsg:
		if s.completing {
			return s, nil
		}
		switch msg.String() {
		case "left", "p":
			s.seq++
			s.errMsg = ""
			if err := s.env.Session.Previous(context.Background()); err != nil {
				s.fail("previous question", err)
				return s, nil
			}
			s.refresh()
			return s, nil
		case "right", "n":
			s.seq++
			return s, s.advance()
		}
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleChoice(value int) tea.Cmd {
	if s.completing {
		return nil
	}
	s.errMsg = ""
	if err := s.env.Session.Select(context.Background(), value); err != nil {
		s.fail("select answer", err)
		return nil
	}
	s.seq++
	seq := s.seq
	if s.env.AutoAdvance <= 0 {
		return func() tea.Msg { return advanceMsg{seq: seq} }
	}
	return tea.Tick(s.env.AutoAdvance, func(time.Time) tea.Msg {
		return advanceMsg{seq: seq}
	})
}

// advance moves to the next question, or scores the assessment when the
// last one is answered.
func (s *QuizScreen) advance() tea.Cmd {
	done, err := s.env.Session.Next(context.Background())
	switch {
	case errors.Is(err, session.ErrUnanswered):
		s.errMsg = s.env.T(i18n.QuizSelectFirst)
		return nil
	case err != nil:
		s.fail("next question", err)
		return nil
	case done:
		return s.complete()
	}
	s.errMsg = ""
	s.refresh()
	return nil
}

func (s *QuizScreen) complete() tea.Cmd {
	s.completing = true
	sess := s.env.Session
	return func() tea.Msg {
		o, err := sess.Complete(context.Background())
		if err != nil {
			return completedMsg{Err: err}
		}
		return completedMsg{Record: store.RecordFromOutcome(o)}
	}
}

func (s *QuizScreen) handleCompleted(msg completedMsg) tea.Cmd {
	if msg.Err != nil {
		s.completing = false
		if errors.Is(msg.Err, disc.ErrIncompleteInput) {
			s.errMsg = s.env.T(i18n.QuizIncomplete)
			return nil
		}
		s.fail("complete assessment", msg.Err)
		return nil
	}
	next := results.New(s.env, msg.Record)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) fail(op string, err error) {
	s.env.Log().Error(op, zap.Error(err))
	s.errMsg = err.Error()
}

func (s *QuizScreen) View(width, height int) string {
	env := s.env
	sess := env.Session
	cw := min(width-4, 72)

	index := sess.Index()
	total := sess.Total()
	answered := sess.Answers().Answered()

	var b strings.Builder
	b.WriteString(theme.Hint.Render(env.Tf(i18n.QuizProgress, index+1, total)) + "\n")
	b.WriteString(components.NewProgressBar("", float64(answered)/float64(total), true, cw).View() + "\n\n")

	q := sess.Current()
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(i18n.QuestionText(env.Lang, q.ID)) + "\n\n")
	b.WriteString(s.choice.View() + "\n")

	b.WriteString(s.navigation() + "\n")
	if s.errMsg != "" {
		b.WriteString("\n" + theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func (s *QuizScreen) navigation() string {
	env := s.env
	prev := components.NewButton("← "+env.T(i18n.QuizPrevious), env.Session.Index() > 0, nil)
	label := env.T(i18n.QuizNext) + " →"
	if env.Session.IsLast() {
		label = env.T(i18n.QuizFinish)
	}
	next := components.NewButton(label, env.Session.CurrentValue() != disc.Unanswered, nil)
	return lipgloss.JoinHorizontal(lipgloss.Center, prev.View(), "  ", next.View())
}
