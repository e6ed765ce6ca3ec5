package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	accountscreen "github.com/abhisek/disc/internal/screens/account"
	"github.com/abhisek/disc/internal/screens/history"
	"github.com/abhisek/disc/internal/screens/intro"
	"github.com/abhisek/disc/internal/screens/quiz"
	"github.com/abhisek/disc/internal/session"
	"github.com/abhisek/disc/internal/store"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/theme"
)

// noHighlight leaves every emblem cell in its own color.
const noHighlight = disc.Dimension(-1)

// Menu positions.
const (
	itemStart = iota
	itemResume
	itemHistory
	itemAccount
	itemLanguage
	itemQuit
)

type languageChangedMsg struct {
	Lang i18n.Lang
}

type homeLoadedMsg struct {
	Latest *store.ResultRecord
	Err    error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env    *screen.Env
	menu   components.Menu
	latest *store.ResultRecord
	status string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.buildMenu(itemStart)
	return h
}

func (h *HomeScreen) buildMenu(selected int) {
	env := h.env
	inProgress := env.Session != nil && env.Session.Phase() == session.PhaseQuestions

	items := []components.MenuItem{
		itemStart: {Label: env.T(i18n.MenuStart), Action: func() tea.Cmd {
			return push(intro.New(env))
		}},
		itemResume: {Label: env.T(i18n.MenuResume), Disabled: !inProgress, Action: func() tea.Cmd {
			return push(quiz.New(env))
		}},
		itemHistory: {Label: env.T(i18n.MenuHistory), Action: func() tea.Cmd {
			return push(history.New(env))
		}},
		itemAccount: {Label: env.T(i18n.MenuAccount), Action: func() tea.Cmd {
			return push(accountscreen.New(env))
		}},
		itemLanguage: {
			Label:  fmt.Sprintf("%s: %s", env.T(i18n.MenuLanguage), env.Lang.DisplayName()),
			Action: h.toggleLanguage,
		},
		itemQuit: {Label: env.T(i18n.MenuQuit), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	if selected >= 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) toggleLanguage() tea.Cmd {
	next := i18n.Spanish
	if h.env.Lang == i18n.Spanish {
		next = i18n.English
	}
	if err := h.env.SetLang(context.Background(), next); err != nil {
		h.env.Log().Warn("language not saved", zap.Error(err))
	}
	return func() tea.Msg {
		return languageChangedMsg{Lang: next}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLatest()
}

// Resume refreshes the menu and last result when the screen is shown again.
func (h *HomeScreen) Resume() tea.Cmd {
	h.status = ""
	h.buildMenu(h.menu.Selected)
	return h.loadLatest()
}

func (h *HomeScreen) loadLatest() tea.Cmd {
	if h.env.Store == nil {
		return nil
	}
	results := h.env.Store.Results()
	return func() tea.Msg {
		rec, err := results.Latest(context.Background())
		return homeLoadedMsg{Latest: rec, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		if msg.Err != nil {
			h.env.Log().Warn("load latest result", zap.Error(msg.Err))
			return h, nil
		}
		h.latest = msg.Latest
		return h, nil

	case languageChangedMsg:
		h.status = h.env.Tf(i18n.LanguageChanged, msg.Lang.DisplayName())
		h.buildMenu(itemLanguage)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	env := h.env
	var sections []string

	sections = append(sections,
		theme.Title.Render(env.T(i18n.AppTitle)),
		theme.Subtitle.Render(env.T(i18n.AppTagline)),
	)

	highlight := noHighlight
	if h.latest != nil {
		highlight = h.latest.Primary
	}
	if height >= 20 {
		sections = append(sections, RenderEmblem(highlight))
	}

	if h.latest != nil {
		p := h.latest.Result().Primary
		sections = append(sections, theme.Body.Render(fmt.Sprintf("%s: %s (%d%%)",
			env.T(i18n.ResultsPrimary), i18n.DimensionName(env.Lang, p.Dimension), p.Score)))
	}

	menu := theme.Card.Width(min(width-4, 44)).Render(strings.TrimRight(h.menu.View(), "\n"))
	sections = append(sections, menu)

	if h.status != "" {
		sections = append(sections, theme.StatusText.Render(h.status))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, interleave(sections)...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// interleave puts a blank line between sections.
func interleave(sections []string) []string {
	out := make([]string, 0, 2*len(sections))
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, s)
	}
	return out
}

func (h *HomeScreen) Title() string {
	return ""
}
