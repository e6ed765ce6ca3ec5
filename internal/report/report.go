// Package report renders results, history and statistics for the command
// line in text, JSON, YAML or Markdown.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/disc/internal/i18n"
)

// Format is an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatMarkdown)}
}

// ParseFormat accepts a format name or a common alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(Formats(), ", "))
}

const barWidth = 20

// Renderer writes reports in one language.
type Renderer struct {
	lang     i18n.Lang
	terminal bool
	width    int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTerminal renders Markdown through glamour, wrapped at width.
func WithTerminal(width int) Option {
	return func(r *Renderer) {
		r.terminal = true
		r.width = width
	}
}

// NewRenderer creates a Renderer for lang.
func NewRenderer(lang i18n.Lang, opts ...Option) *Renderer {
	r := &Renderer{lang: lang, width: 80}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) t(key i18n.Key) string {
	return i18n.T(r.lang, key)
}

// write dispatches v to the structured encoders, or to the given text and
// markdown builders.
func (r *Renderer) write(w io.Writer, f Format, v any, text, markdown func() string) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		return r.markdown(w, markdown())
	case FormatText, "":
		_, err := io.WriteString(w, text())
		return err
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func (r *Renderer) markdown(w io.Writer, md string) error {
	if !r.terminal {
		_, err := io.WriteString(w, md)
		return err
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// bar draws a fixed-width horizontal bar for a 0-100 score.
func bar(score int) string {
	filled := min(max(score, 0), 100) * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func plainTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

// mdEscape keeps user text from breaking a Markdown table row.
func mdEscape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
