package account

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/account"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/layout"
	"github.com/abhisek/disc/internal/ui/theme"
)

// formKind selects which form is open.
type formKind int

const (
	formNone formKind = iota
	formLogin
	formRegister
)

const fieldWidth = 40

type signedInMsg struct {
	User *account.User
	Err  error
}

type signedOutMsg struct {
	Err error
}

// AccountScreen signs the user in, registers or signs out.
type AccountScreen struct {
	env    *screen.Env
	menu   components.Menu
	form   formKind
	fields []components.TextInput
	focus  int
	busy   bool
	status string
	failed bool
}

var _ screen.Screen = (*AccountScreen)(nil)
var _ screen.KeyHintProvider = (*AccountScreen)(nil)
var _ screen.Modal = (*AccountScreen)(nil)

// New creates an AccountScreen.
func New(env *screen.Env) *AccountScreen {
	s := &AccountScreen{env: env}
	s.buildMenu()
	return s
}

func (s *AccountScreen) buildMenu() {
	signedIn := s.env.User != nil
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: s.env.T(i18n.AccountLogin), Action: func() tea.Cmd { return s.open(formLogin) }, Disabled: signedIn},
		{Label: s.env.T(i18n.AccountRegister), Action: func() tea.Cmd { return s.open(formRegister) }, Disabled: signedIn},
		{Label: s.env.T(i18n.AccountLogout), Action: s.logout, Disabled: !signedIn},
	})
}

func (s *AccountScreen) Init() tea.Cmd {
	return nil
}

func (s *AccountScreen) Title() string {
	return s.env.T(i18n.AccountTitle)
}

// InModal reports whether a form is open, so esc closes it first.
func (s *AccountScreen) InModal() bool {
	return s.form != formNone
}

func (s *AccountScreen) KeyHints() []layout.KeyHint {
	if s.form != formNone {
		return []layout.KeyHint{
			{Key: "Tab", Description: s.env.T(i18n.HintNextField)},
			{Key: "Enter", Description: s.env.T(i18n.HintSubmit)},
			{Key: "Esc", Description: s.env.T(i18n.HintCancel)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.HintNavigate)},
		{Key: "Enter", Description: s.env.T(i18n.HintSelect)},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

func (s *AccountScreen) open(kind formKind) tea.Cmd {
	env := s.env
	s.form = kind
	s.focus = 0
	s.status = ""
	s.fields = []components.TextInput{
		components.NewTextInput(env.T(i18n.AccountEmail), "name@example.com", fieldWidth),
		components.NewPasswordInput(env.T(i18n.AccountPassword), "", fieldWidth),
	}
	if kind == formRegister {
		s.fields = append(s.fields, components.NewTextInput(env.T(i18n.AccountDisplayName), "", fieldWidth))
	}
	for i := 1; i < len(s.fields); i++ {
		s.fields[i].Blur()
	}
	return s.fields[0].Focus()
}

func (s *AccountScreen) close() {
	s.form = formNone
	s.fields = nil
}

func (s *AccountScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signedInMsg:
		s.busy = false
		if msg.Err != nil {
			s.fail(msg.Err)
			return s, nil
		}
		s.env.User = msg.User
		s.close()
		s.buildMenu()
		s.failed = false
		s.status = s.env.Tf(i18n.AccountWelcome, msg.User.Name())
		return s, nil

	case signedOutMsg:
		s.busy = false
		if msg.Err != nil {
			s.fail(msg.Err)
			return s, nil
		}
		s.env.User = nil
		s.buildMenu()
		s.failed = false
		s.status = s.env.T(i18n.AccountSignedOut)
		return s, nil

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		if s.form != formNone {
			return s, s.handleFormKey(msg)
		}
	}

	if s.form != formNone {
		var cmd tea.Cmd
		s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *AccountScreen) handleFormKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.close()
		return nil
	case "tab", "down":
		return s.moveFocus(1)
	case "shift+tab", "up":
		return s.moveFocus(-1)
	case "enter":
		if s.focus < len(s.fields)-1 {
			return s.moveFocus(1)
		}
		return s.submit()
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return cmd
}

func (s *AccountScreen) moveFocus(delta int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.fields)) % len(s.fields)
	return s.fields[s.focus].Focus()
}

func (s *AccountScreen) submit() tea.Cmd {
	email := s.fields[0].Value()
	password := s.fields[1].Value()
	if strings.TrimSpace(email) == "" || password == "" {
		s.failed = true
		s.status = s.env.T(i18n.AccountInvalid)
		return nil
	}

	var name string
	if s.form == formRegister {
		name = s.fields[2].Value()
	}
	register := s.form == formRegister
	accounts := s.env.Accounts
	s.busy = true
	return func() tea.Msg {
		ctx := context.Background()
		var (
			u   *account.User
			err error
		)
		if register {
			u, err = accounts.Register(ctx, email, password, name)
		} else {
			u, err = accounts.Login(ctx, email, password)
		}
		return signedInMsg{User: u, Err: err}
	}
}

func (s *AccountScreen) logout() tea.Cmd {
	s.busy = true
	accounts := s.env.Accounts
	return func() tea.Msg {
		return signedOutMsg{Err: accounts.Logout(context.Background())}
	}
}

func (s *AccountScreen) fail(err error) {
	s.failed = true
	if errors.Is(err, account.ErrInvalidCredentials) {
		s.status = s.env.T(i18n.AccountInvalid)
		return
	}
	s.env.Log().Error("account", zap.Error(err))
	s.status = err.Error()
}

func (s *AccountScreen) View(width, height int) string {
	env := s.env
	var b strings.Builder

	if env.User != nil {
		b.WriteString(theme.Body.Bold(true).Render(env.Tf(i18n.AccountSignedInAs, env.User.Name())) + "\n")
		if env.User.DisplayName != "" {
			b.WriteString(theme.Hint.Render(env.User.Email) + "\n")
		}
	} else {
		b.WriteString(theme.Hint.Render(env.T(i18n.AccountSignedOut)) + "\n")
	}
	b.WriteString("\n")

	if s.form != formNone {
		heading := env.T(i18n.AccountLogin)
		if s.form == formRegister {
			heading = env.T(i18n.AccountRegister)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(heading) + "\n\n")
		for _, f := range s.fields {
			b.WriteString(f.View() + "\n\n")
		}
	} else {
		b.WriteString(strings.TrimRight(s.menu.View(), "\n") + "\n")
	}

	if s.busy {
		b.WriteString("\n" + theme.Hint.Render("..."))
	} else if s.status != "" {
		style := theme.StatusText
		if s.failed {
			style = theme.ErrorText
		}
		b.WriteString("\n" + style.Render(s.status))
	}

	card := theme.Card.Width(min(width-4, 56)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
