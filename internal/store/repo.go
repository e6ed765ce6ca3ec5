package store

import (
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/disc/internal/disc"
)

// Setting keys.
const (
	KeyProgress    = "session.progress"
	KeyLanguage    = "language"
	KeyAccount     = "account.current"
	KeySheetConfig = "sheet.config"
	KeyLastName    = "session.last_name"
)

// ResultRecord is a stored, completed assessment.
type ResultRecord struct {
	ID          int            `json:"-" yaml:"-"`
	UID         string         `json:"id" yaml:"id"`
	SessionID   string         `json:"sessionId,omitempty" yaml:"session_id,omitempty"`
	UserName    string         `json:"userName" yaml:"user_name"`
	Language    string         `json:"language" yaml:"language"`
	Scores      disc.Scores    `json:"scores" yaml:"scores"`
	Primary     disc.Dimension `json:"primary" yaml:"primary"`
	Secondary   disc.Dimension `json:"secondary" yaml:"secondary"`
	Answers     disc.AnswerSet `json:"answers,omitempty" yaml:"-"`
	StartedAt   time.Time      `json:"startedAt,omitempty" yaml:"started_at,omitempty"`
	CompletedAt time.Time      `json:"completedAt" yaml:"completed_at"`
}

// Result derives insights and top traits from the stored scores.
func (r *ResultRecord) Result() disc.Result {
	return disc.ResultFromScores(r.Scores)
}

// ExportStatus is the outcome of an export attempt.
type ExportStatus string

const (
	ExportSucceeded ExportStatus = "succeeded"
	ExportFailed    ExportStatus = "failed"
)

// ExportRecord is a logged spreadsheet export attempt.
type ExportRecord struct {
	ID        int
	ResultUID string
	UserID    string
	ScriptURL string
	Status    ExportStatus
	Payload   string
	Error     string
	CreatedAt time.Time
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
