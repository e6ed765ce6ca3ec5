// Package screentest provides helpers for driving screens in tests.
package screentest

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/disc/internal/account"
	"github.com/abhisek/disc/internal/export"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/session"
	"github.com/abhisek/disc/internal/store"
)

// NewEnv returns an English env backed by a private in-memory store, with
// every simulated delay turned off.
func NewEnv(t *testing.T) *screen.Env {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return &screen.Env{
		Lang:      i18n.English,
		Store:     st,
		Session:   session.New(session.Options{Storage: st.Progress(), Results: st.Results(), Language: "en"}),
		Accounts:  account.NewService(st.Settings(), account.WithDelay(0)),
		Exporter:  export.NewExporter(st.Settings(), st.Exports(), export.WithDelay(0)),
		OutputDir: t.TempDir(),
	}
}

// Key returns a key press for a printable rune.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special key presses.
var (
	Enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	Esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	Tab   = tea.KeyPressMsg{Code: tea.KeyTab}
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}
	Right = tea.KeyPressMsg{Code: tea.KeyRight}
)

// Type sends text to s one rune at a time.
func Type(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(Key(r))
	}
	return s
}

// Run executes cmd and returns its message, nil for a nil cmd.
func Run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Pushed asserts msg is a router push and returns its screen.
func Pushed(t *testing.T, msg tea.Msg) screen.Screen {
	t.Helper()
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg, got %T", msg)
	return push.Screen
}

// Replaced asserts msg is a router replace and returns its screen.
func Replaced(t *testing.T, msg tea.Msg) screen.Screen {
	t.Helper()
	replace, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", msg)
	return replace.Screen
}
