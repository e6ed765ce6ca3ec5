package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/ui/theme"
)

// ChoiceMadeMsg is emitted when the user picks an option.
type ChoiceMadeMsg struct {
	Value int
}

// Likert is a single-choice selector over an ordered scale. Option i has
// value i+1. Number keys pick an option directly.
type Likert struct {
	Options []string
	Cursor  int
	Value   int // chosen value, 0 when nothing is chosen
}

// NewLikert creates a selector with value preselected (0 for none).
func NewLikert(options []string, value int) Likert {
	l := Likert{Options: options}
	l.SetValue(value)
	return l
}

// SetValue marks value as chosen and moves the cursor onto it.
func (l *Likert) SetValue(value int) {
	if value < 1 || value > len(l.Options) {
		l.Value = 0
		return
	}
	l.Value = value
	l.Cursor = value - 1
}

// Init returns nil.
func (l Likert) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
		return l, nil
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
		return l, nil
	case "enter", "space":
		return l.choose(l.Cursor + 1)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return l.choose(int(key[0] - '0'))
	}
	return l, nil
}

func (l Likert) choose(value int) (Likert, tea.Cmd) {
	if value < 1 || value > len(l.Options) {
		return l, nil
	}
	l.SetValue(value)
	return l, func() tea.Msg { return ChoiceMadeMsg{Value: value} }
}

// View renders the options.
func (l Likert) View() string {
	var s string
	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if i+1 == l.Value {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d  %s %s", prefix, i+1, mark, opt)

		switch {
		case i+1 == l.Value:
			s += theme.Chosen.Render(line) + "\n"
		case i == l.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
