package results

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/account"
	"github.com/abhisek/disc/internal/certificate"
	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/store"
	"github.com/abhisek/disc/internal/ui/components"
	"github.com/abhisek/disc/internal/ui/layout"
	"github.com/abhisek/disc/internal/ui/theme"
)

// RetakeMsg asks the app to start a new attempt. The session has already
// been reset when it is sent.
type RetakeMsg struct{}

type certificateMsg struct {
	Path string
	Err  error
}

type exportMsg struct {
	Err error
}

// ResultsScreen shows a scored assessment and the actions on it.
type ResultsScreen struct {
	env    *screen.Env
	rec    *store.ResultRecord
	menu   components.Menu
	busy   bool
	status string
	failed bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for rec. A nil rec shows the empty state.
func New(env *screen.Env, rec *store.ResultRecord) *ResultsScreen {
	s := &ResultsScreen{env: env, rec: rec}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: env.T(i18n.ResultsCertificate), Action: s.writeCertificate, Disabled: rec == nil},
		{Label: env.T(i18n.ResultsExport), Action: s.export, Disabled: rec == nil},
		{Label: env.T(i18n.ResultsRetake), Action: s.retake},
	})
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return s.env.T(i18n.ResultsTitle)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T(i18n.HintNavigate)},
		{Key: "Enter", Description: s.env.T(i18n.HintSelect)},
		{Key: "Esc", Description: s.env.T(i18n.HintBack)},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case certificateMsg:
		s.busy = false
		if msg.Err != nil {
			s.setError("write certificate", msg.Err, msg.Err.Error())
			return s, nil
		}
		s.setStatus(s.env.Tf(i18n.CertWritten, msg.Path))
		return s, nil

	case exportMsg:
		s.busy = false
		switch {
		case errors.Is(msg.Err, account.ErrNotSignedIn):
			s.failed = true
			s.status = s.env.T(i18n.ExportLoginRequired)
		case msg.Err != nil:
			s.setError("export result", msg.Err, s.env.T(i18n.ExportFailed))
		default:
			s.setStatus(s.env.T(i18n.ExportSuccess))
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) setStatus(text string) {
	s.failed = false
	s.status = text
}

func (s *ResultsScreen) setError(op string, err error, text string) {
	s.env.Log().Error(op, zap.Error(err))
	s.failed = true
	s.status = text
}

func (s *ResultsScreen) writeCertificate() tea.Cmd {
	s.busy = true
	cert := certificate.New(s.rec.UserName, s.rec.CompletedAt, s.env.Lang, s.rec.Result())
	dir := s.env.OutputDir
	return func() tea.Msg {
		path, err := cert.WriteFile(dir)
		return certificateMsg{Path: path, Err: err}
	}
}

func (s *ResultsScreen) export() tea.Cmd {
	if s.env.Exporter == nil || s.env.Accounts == nil {
		s.setError("export result", errors.New("exporter not configured"), s.env.T(i18n.ExportFailed))
		return nil
	}
	s.busy = true
	accounts, exporter, rec := s.env.Accounts, s.env.Exporter, s.rec
	return func() tea.Msg {
		ctx := context.Background()
		user, err := accounts.RequireUser(ctx)
		if err != nil {
			return exportMsg{Err: err}
		}
		_, err = exporter.Export(ctx, user, rec)
		return exportMsg{Err: err}
	}
}

func (s *ResultsScreen) retake() tea.Cmd {
	if err := s.env.Session.Reset(context.Background()); err != nil {
		s.setError("reset session", err, err.Error())
		return nil
	}
	return func() tea.Msg { return RetakeMsg{} }
}

func (s *ResultsScreen) View(width, height int) string {
	env := s.env
	cw := min(width-4, 76)

	if s.rec == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(env.T(i18n.ResultsNone))+"\n\n"+strings.TrimRight(s.menu.View(), "\n"))
	}

	r := i18n.Localize(env.Lang, s.rec.Result())
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("%s · %s", s.rec.UserName, i18n.FormatDate(env.Lang, s.rec.CompletedAt))) + "\n")
	if !compact {
		b.WriteString(theme.Hint.Render(env.T(i18n.ResultsSubtitle)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(traitLine(env, i18n.ResultsPrimary, r.Primary) + "\n")
	b.WriteString(traitLine(env, i18n.ResultsSecondary, r.Secondary) + "\n\n")

	for _, in := range r.Insights {
		b.WriteString(ScoreBar(env.Lang, in.Dimension, in.Score, cw) + "\n")
	}
	b.WriteString("\n")

	insight := lipgloss.NewStyle().
		Width(cw-4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.DimensionColor(r.Primary.Dimension)).
		Padding(0, 1).
		Render(lipgloss.NewStyle().Bold(true).Render(env.T(i18n.ResultsKeyInsight)) + "\n" + r.Primary.Description)
	b.WriteString(insight + "\n")

	if !compact {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(env.T(i18n.ResultsTable)) + "\n")
		b.WriteString(RelationshipTable(env.Lang, r, cw) + "\n")
		b.WriteString(theme.Hint.Render(certificate.ShareText(env.Lang, s.rec.Scores)) + "\n")
	}

	b.WriteString("\n" + strings.TrimRight(s.menu.View(), "\n"))
	if s.status != "" {
		style := theme.StatusText
		if s.failed {
			style = theme.ErrorText
		}
		b.WriteString("\n\n" + style.Render(s.status))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func traitLine(env *screen.Env, label i18n.Key, in disc.Insight) string {
	name := lipgloss.NewStyle().Foreground(theme.DimensionColor(in.Dimension)).Bold(true).
		Render(fmt.Sprintf("%s (%d%%)", i18n.DimensionName(env.Lang, in.Dimension), in.Score))
	return theme.Hint.Render(env.T(label)+": ") + name
}

// ScoreBar renders one dimension's score as a bar in its color.
func ScoreBar(lang i18n.Lang, d disc.Dimension, score, width int) string {
	label := fmt.Sprintf("%s %-11s", d.Code(), i18n.DimensionName(lang, d))
	bar := components.NewProgressBar(label, float64(score)/100, true, width)
	bar.Color = theme.DimensionColor(d)
	return bar.View()
}

// RelationshipTable lists every dimension with its score and description.
func RelationshipTable(lang i18n.Lang, r disc.Result, width int) string {
	rows := make([][]string, 0, len(r.Insights))
	for _, in := range r.Insights {
		rows = append(rows, []string{
			i18n.DimensionName(lang, in.Dimension),
			strconv.Itoa(in.Score) + "%",
			in.Description,
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(i18n.T(lang, i18n.ResultsDimension), i18n.T(lang, i18n.ResultsScore), i18n.T(lang, i18n.ResultsDescription)).
		Rows(rows...).
		Width(width).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true).Foreground(theme.Primary)
			}
			if col == 0 && row >= 0 && row < len(r.Insights) {
				return style.Foreground(theme.DimensionColor(r.Insights[row].Dimension))
			}
			return style.Foreground(theme.Text)
		}).
		String()
}
