package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/router"
	"github.com/abhisek/disc/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome(lang i18n.Lang) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(lang, factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestLettersRevealOverTime(t *testing.T) {
	w, _ := newTestWelcome(i18n.English)
	if got := w.letters(); got != 1 {
		t.Errorf("letters at start = %d, want 1", got)
	}

	sendTicks(w, 3)
	if got := w.letters(); got != 2 {
		t.Errorf("letters after 300ms = %d, want 2", got)
	}

	sendTicks(w, 10)
	if got := w.letters(); got != 4 {
		t.Errorf("letters after 1.3s = %d, want 4", got)
	}
}

func TestTaglineAppearsAfterBanner(t *testing.T) {
	w, _ := newTestWelcome(i18n.Spanish)
	if strings.Contains(w.View(100, 30), "Descubre") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 15)
	if !strings.Contains(w.View(100, 30), i18n.T(i18n.Spanish, i18n.AppTagline)) {
		t.Error("tagline should be visible after 1.5s")
	}
}

func TestTicksStopAfterAnimation(t *testing.T) {
	w, callCount := newTestWelcome(i18n.English)

	if cmd := sendTicks(w, 26); cmd != nil {
		t.Error("expected no further tick once the animation is done")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
	if !strings.Contains(w.View(100, 30), "press any key") {
		t.Error("expected continue hint after animation")
	}
}

func TestKeypressDuringAnimationSkipsToTransition(t *testing.T) {
	w, callCount := newTestWelcome(i18n.English)
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome(i18n.English)
	sendTicks(w, 25)
	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestNarrowBannerFallback(t *testing.T) {
	if got := RenderBanner(20, 4); !strings.Contains(got, "D") || strings.Contains(got, "██") {
		t.Errorf("narrow banner = %q", got)
	}
	if got := RenderBanner(100, 1); !strings.Contains(got, "██") {
		t.Errorf("wide banner should use block letters, got %q", got)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome(i18n.English)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
