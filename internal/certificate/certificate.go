// Package certificate builds the shareable DISC profile certificate.
package certificate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
)

// FilePrefix starts every certificate file name.
const FilePrefix = "DISC_Certificate_"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Certificate is the data printed on a certificate.
type Certificate struct {
	UserName string
	Date     time.Time
	Lang     i18n.Lang
	Result   disc.Result
}

// New builds a certificate for r with descriptions localized to lang.
func New(userName string, date time.Time, lang i18n.Lang, r disc.Result) *Certificate {
	return &Certificate{
		UserName: strings.TrimSpace(userName),
		Date:     date,
		Lang:     lang,
		Result:   i18n.Localize(lang, r),
	}
}

// FormattedDate returns the long-form completion date.
func (c *Certificate) FormattedDate() string {
	return i18n.FormatDate(c.Lang, c.Date)
}

// Summary names the primary and secondary traits with their scores.
func (c *Certificate) Summary() string {
	p, s := c.Result.Primary, c.Result.Secondary
	return fmt.Sprintf(i18n.T(c.Lang, i18n.CertSummary),
		i18n.DimensionName(c.Lang, p.Dimension), p.Score,
		i18n.DimensionName(c.Lang, s.Dimension), s.Score)
}

// KeyInsight is the description of the primary trait.
func (c *Certificate) KeyInsight() string {
	return c.Result.Primary.Description
}

// FileName returns the PDF file name for this certificate.
func (c *Certificate) FileName() string {
	return FileName(c.UserName, c.Date)
}

// ShareText returns the one-line profile summary for sharing.
func (c *Certificate) ShareText() string {
	return ShareText(c.Lang, c.Result.Scores)
}

// FileName returns DISC_Certificate_<name>_<YYYY-MM-DD>.pdf, with each
// whitespace run in name replaced by an underscore. Path separators are
// replaced too so the name stays a single path element.
func FileName(name string, date time.Time) string {
	name = whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "_")
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	return FilePrefix + name + "_" + date.Format(time.DateOnly) + ".pdf"
}

// ShareText returns "Check out my DISC profile: D: d%, I: i%, S: s%, C: c%"
// in lang.
func ShareText(lang i18n.Lang, s disc.Scores) string {
	return fmt.Sprintf(i18n.T(lang, i18n.ResultsShare), s.Dominance, s.Influence, s.Steadiness, s.Compliance)
}
