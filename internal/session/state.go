package session

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/disc/internal/disc"
)

// Phase represents where the user is in an assessment.
type Phase int

const (
	PhaseIntro     Phase = iota // Waiting for a name
	PhaseQuestions              // Answering questions
	PhaseCompleted              // All questions answered and scored
)

func (p Phase) String() string {
	switch p {
	case PhaseQuestions:
		return "questions"
	case PhaseCompleted:
		return "completed"
	default:
		return "intro"
	}
}

// MinNameLength is the minimum length of a trimmed user name.
const MinNameLength = 2

// DefaultAutoAdvance is the pause between selecting an option and moving on.
const DefaultAutoAdvance = 500 * time.Millisecond

var (
	// ErrNotStarted is returned when a question operation runs before Start.
	ErrNotStarted = errors.New("assessment not started")

	// ErrNameTooShort is returned by Start for names under MinNameLength.
	ErrNameTooShort = errors.New("name must be at least 2 characters")

	// ErrUnanswered is returned by Next when the current question has no answer.
	ErrUnanswered = errors.New("current question is unanswered")
)

// Progress is the persisted state of an in-flight assessment.
type Progress struct {
	SessionID            string         `json:"sessionId"`
	UserName             string         `json:"userName"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
	TotalQuestions       int            `json:"totalQuestions"`
	Answers              disc.AnswerSet `json:"answers"`
	StartedAt            time.Time      `json:"startedAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// Storage persists progress between runs. LoadProgress returns (nil, nil)
// when nothing is saved.
type Storage interface {
	LoadProgress(ctx context.Context) (*Progress, error)
	SaveProgress(ctx context.Context, p *Progress) error
	ClearProgress(ctx context.Context) error
}

// Outcome is a completed, scored assessment.
type Outcome struct {
	ResultID    string // set by the result sink once stored
	SessionID   string
	UserName    string
	Language    string
	Answers     disc.AnswerSet
	Result      disc.Result
	StartedAt   time.Time
	CompletedAt time.Time
}

// ResultSink receives completed assessments.
type ResultSink interface {
	SaveOutcome(ctx context.Context, o *Outcome) error
}
