package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/disc/internal/certificate"
	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/store"
)

// Trait is one dimension's score and description.
type Trait struct {
	Code        string `json:"code" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Score       int    `json:"score" yaml:"score"`
	Tier        string `json:"tier" yaml:"tier"`
	Description string `json:"description" yaml:"description"`
}

// Profile is the printable view of one result.
type Profile struct {
	ID          string      `json:"id,omitempty" yaml:"id,omitempty"`
	UserName    string      `json:"userName,omitempty" yaml:"user_name,omitempty"`
	Language    i18n.Lang   `json:"language" yaml:"language"`
	CompletedAt string      `json:"completedAt,omitempty" yaml:"completed_at,omitempty"`
	Scores      disc.Scores `json:"scores" yaml:"scores"`
	Primary     Trait       `json:"primary" yaml:"primary"`
	Secondary   Trait       `json:"secondary" yaml:"secondary"`
	Insights    []Trait     `json:"insights" yaml:"insights"`
	Share       string      `json:"share" yaml:"share"`

	date time.Time
}

// NewProfile builds the view of r in lang.
func NewProfile(lang i18n.Lang, userName string, completedAt time.Time, r disc.Result) Profile {
	r = i18n.Localize(lang, r)
	p := Profile{
		UserName:  userName,
		Language:  lang,
		Scores:    r.Scores,
		Primary:   trait(lang, r.Primary),
		Secondary: trait(lang, r.Secondary),
		Share:     certificate.ShareText(lang, r.Scores),
		date:      completedAt,
	}
	if !completedAt.IsZero() {
		p.CompletedAt = completedAt.Format(time.RFC3339)
	}
	for _, in := range r.Insights {
		p.Insights = append(p.Insights, trait(lang, in))
	}
	return p
}

// ProfileFromRecord builds the view of a stored result.
func ProfileFromRecord(lang i18n.Lang, rec *store.ResultRecord) Profile {
	p := NewProfile(lang, rec.UserName, rec.CompletedAt, rec.Result())
	p.ID = rec.UID
	return p
}

func trait(lang i18n.Lang, in disc.Insight) Trait {
	return Trait{
		Code:        in.Dimension.Code(),
		Name:        i18n.DimensionName(lang, in.Dimension),
		Score:       in.Score,
		Tier:        disc.TierFor(in.Score).String(),
		Description: in.Description,
	}
}

// Profile writes p in format f.
func (r *Renderer) Profile(w io.Writer, f Format, p Profile) error {
	return r.write(w, f, p,
		func() string { return r.profileText(p) },
		func() string { return r.profileMarkdown(p) })
}

func (r *Renderer) profileText(p Profile) string {
	var b strings.Builder
	b.WriteString(r.t(i18n.ResultsTitle))
	if p.UserName != "" {
		b.WriteString(": " + p.UserName)
	}
	if !p.date.IsZero() {
		b.WriteString("  (" + i18n.FormatDate(p.Language, p.date) + ")")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s: %s (%d%%)\n", r.t(i18n.ResultsPrimary), p.Primary.Name, p.Primary.Score)
	fmt.Fprintf(&b, "%s: %s (%d%%)\n\n", r.t(i18n.ResultsSecondary), p.Secondary.Name, p.Secondary.Score)

	nameW := 0
	for _, in := range p.Insights {
		nameW = max(nameW, len([]rune(in.Name)))
	}
	for _, in := range p.Insights {
		pad := strings.Repeat(" ", nameW-len([]rune(in.Name)))
		fmt.Fprintf(&b, "%s %s%s  %s %3d%%\n", in.Code, in.Name, pad, bar(in.Score), in.Score)
	}

	b.WriteString("\n" + r.t(i18n.ResultsKeyInsight) + "\n")
	b.WriteString(p.Primary.Description + "\n\n")

	rows := make([][]string, 0, len(p.Insights))
	for _, in := range p.Insights {
		rows = append(rows, []string{in.Name, strconv.Itoa(in.Score) + "%", in.Description})
	}
	b.WriteString(r.t(i18n.ResultsTable) + "\n")
	b.WriteString(plainTable([]string{r.t(i18n.ResultsDimension), r.t(i18n.ResultsScore), r.t(i18n.ResultsDescription)}, rows))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) profileMarkdown(p Profile) string {
	var b strings.Builder
	b.WriteString("# " + r.t(i18n.ResultsTitle) + "\n\n")
	if p.UserName != "" {
		fmt.Fprintf(&b, "**%s**", mdEscape(p.UserName))
		if !p.date.IsZero() {
			b.WriteString(" · " + i18n.FormatDate(p.Language, p.date))
		}
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "- **%s:** %s (%d%%)\n", r.t(i18n.ResultsPrimary), p.Primary.Name, p.Primary.Score)
	fmt.Fprintf(&b, "- **%s:** %s (%d%%)\n\n", r.t(i18n.ResultsSecondary), p.Secondary.Name, p.Secondary.Score)

	b.WriteString("## " + r.t(i18n.ResultsKeyInsight) + "\n\n")
	b.WriteString("> " + p.Primary.Description + "\n\n")

	b.WriteString("## " + r.t(i18n.ResultsTable) + "\n\n")
	fmt.Fprintf(&b, "| %s | %s | %s |\n", r.t(i18n.ResultsDimension), r.t(i18n.ResultsScore), r.t(i18n.ResultsDescription))
	b.WriteString("|---|---:|---|\n")
	for _, in := range p.Insights {
		fmt.Fprintf(&b, "| %s (%s) | %d%% | %s |\n", in.Name, in.Code, in.Score, in.Description)
	}
	b.WriteString("\n`" + p.Share + "`\n")
	return b.String()
}
