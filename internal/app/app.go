package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/account"
	"github.com/abhisek/disc/internal/export"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/home"
	"github.com/abhisek/disc/internal/screens/intro"
	"github.com/abhisek/disc/internal/screens/quiz"
	"github.com/abhisek/disc/internal/screens/results"
	"github.com/abhisek/disc/internal/screens/welcome"
	"github.com/abhisek/disc/internal/session"
	"github.com/abhisek/disc/internal/store"
	"github.com/abhisek/disc/internal/ui/layout"
)

// Options wires the TUI to its services.
type Options struct {
	Store       *store.Store
	Session     *session.Session
	Accounts    *account.Service
	Exporter    *export.Exporter
	Logger      *zap.Logger
	Lang        i18n.Lang
	AutoAdvance time.Duration
	OutputDir   string

	// SkipSplash opens the assessment directly: the question screen when
	// progress was resumed, the intro otherwise.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env     *screen.Env
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates the root model. The session should already be
// resumed so the home menu and SkipSplash see saved progress.
func newAppModel(opts Options) AppModel {
	env := &screen.Env{
		Lang:        opts.Lang,
		Session:     opts.Session,
		Store:       opts.Store,
		Accounts:    opts.Accounts,
		Exporter:    opts.Exporter,
		Logger:      opts.Logger,
		OutputDir:   opts.OutputDir,
		AutoAdvance: opts.AutoAdvance,
	}
	if env.Session == nil {
		env.Session = session.New(session.Options{Logger: opts.Logger, Language: opts.Lang.String()})
	}
	if env.Accounts != nil {
		env.User, _ = env.Accounts.Current(context.Background())
	}

	m := AppModel{env: env}
	if !opts.SkipSplash {
		m.router = router.New(welcome.New(env.Lang, func() screen.Screen {
			return home.New(env)
		}))
		m.initCmd = m.router.Active().Init()
		return m
	}

	homeScreen := home.New(env)
	m.router = router.New(homeScreen)
	var next screen.Screen = intro.New(env)
	if env.Session.Phase() == session.PhaseQuestions {
		next = quiz.New(env)
	}
	m.initCmd = tea.Batch(homeScreen.Init(), m.router.Push(next))
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case results.RetakeMsg:
		return m, m.router.Replace(intro.New(m.env))

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if modal, ok := m.router.Active().(screen.Modal); ok && modal.InModal() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// status is shown on the right of the header.
func (m AppModel) status() string {
	parts := []string{strings.ToUpper(m.env.Lang.String())}
	if m.env.User != nil {
		parts = append(parts, m.env.User.Name())
	}
	return strings.Join(parts, " · ")
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: m.env.T(i18n.HintQuit)})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: m.env.T(i18n.HintBack)},
			{Key: "Ctrl+C", Description: m.env.T(i18n.HintQuit)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: m.env.T(i18n.HintNavigate)},
		{Key: "Enter", Description: m.env.T(i18n.HintSelect)},
		{Key: "Ctrl+C", Description: m.env.T(i18n.HintQuit)},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run resumes any saved assessment and starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	if opts.Session != nil {
		if _, err := opts.Session.Resume(ctx); err != nil {
			return fmt.Errorf("resume assessment: %w", err)
		}
	}

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
