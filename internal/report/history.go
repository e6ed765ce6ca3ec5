package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/store"
)

// idLen is how much of a result id the listings show. Any unique prefix
// is accepted by commands that take an id.
const idLen = 8

// HistoryEntry is one row of the results history.
type HistoryEntry struct {
	ID          string      `json:"id" yaml:"id"`
	UserName    string      `json:"userName" yaml:"user_name"`
	CompletedAt time.Time   `json:"completedAt" yaml:"completed_at"`
	Primary     string      `json:"primary" yaml:"primary"`
	Secondary   string      `json:"secondary" yaml:"secondary"`
	Scores      disc.Scores `json:"scores" yaml:"scores"`
}

// History converts stored records to history entries.
func History(records []*store.ResultRecord) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, HistoryEntry{
			ID:          rec.UID,
			UserName:    rec.UserName,
			CompletedAt: rec.CompletedAt,
			Primary:     rec.Primary.Key(),
			Secondary:   rec.Secondary.Key(),
			Scores:      rec.Scores,
		})
	}
	return out
}

// History writes the results history, newest first as given.
func (r *Renderer) History(w io.Writer, f Format, records []*store.ResultRecord) error {
	entries := History(records)
	return r.write(w, f, entries,
		func() string { return r.historyText(records) },
		func() string { return r.historyMarkdown(records) })
}

func shortID(id string) string {
	if len(id) > idLen {
		return id[:idLen]
	}
	return id
}

func (r *Renderer) historyRow(rec *store.ResultRecord) []string {
	s := rec.Scores
	return []string{
		shortID(rec.UID),
		i18n.FormatDate(r.lang, rec.CompletedAt),
		rec.UserName,
		i18n.DimensionName(r.lang, rec.Primary),
		strconv.Itoa(s.Dominance),
		strconv.Itoa(s.Influence),
		strconv.Itoa(s.Steadiness),
		strconv.Itoa(s.Compliance),
	}
}

func (r *Renderer) historyHeaders() []string {
	return []string{"ID", r.t(i18n.HistoryDate), r.t(i18n.HistoryName), r.t(i18n.HistoryPrimary), "D", "I", "S", "C"}
}

func (r *Renderer) historyText(records []*store.ResultRecord) string {
	if len(records) == 0 {
		return r.t(i18n.HistoryEmpty) + "\n"
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, r.historyRow(rec))
	}
	return r.t(i18n.HistoryTitle) + "\n" + plainTable(r.historyHeaders(), rows) + "\n"
}

func (r *Renderer) historyMarkdown(records []*store.ResultRecord) string {
	var b strings.Builder
	b.WriteString("# " + r.t(i18n.HistoryTitle) + "\n\n")
	if len(records) == 0 {
		b.WriteString("_" + r.t(i18n.HistoryEmpty) + "_\n")
		return b.String()
	}
	headers := r.historyHeaders()
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(headers)) + "\n")
	for _, rec := range records {
		row := r.historyRow(rec)
		for i := range row {
			row[i] = mdEscape(row[i])
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(row, " | "))
	}
	return b.String()
}
