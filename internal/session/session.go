// Package session drives a single DISC assessment from name entry to a
// scored result, persisting progress through an injected Storage.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/disc"
)

// Options configures a Session. Storage and Results may be nil.
type Options struct {
	Storage Storage
	Results ResultSink
	Logger  *zap.Logger
	Now     func() time.Time

	// Language is recorded on completed outcomes.
	Language string
}

// Session is one assessment attempt. It is not safe for concurrent use.
type Session struct {
	storage Storage
	results ResultSink
	logger  *zap.Logger
	now     func() time.Time
	lang    string

	id        string
	userName  string
	index     int
	answers   disc.AnswerSet
	phase     Phase
	startedAt time.Time
	outcome   *Outcome
}

// New creates a session in the intro phase.
func New(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		storage: opts.Storage,
		results: opts.Results,
		logger:  opts.Logger,
		now:     opts.Now,
		lang:    opts.Language,
		answers: disc.NewAnswerSet(),
		phase:   PhaseIntro,
	}
}

// Resume restores saved progress. It reports whether an assessment was
// in flight.
func (s *Session) Resume(ctx context.Context) (bool, error) {
	if s.storage == nil {
		return false, nil
	}
	p, err := s.storage.LoadProgress(ctx)
	if err != nil {
		return false, fmt.Errorf("load progress: %w", err)
	}
	if p == nil {
		return false, nil
	}

	answers := disc.NewAnswerSet()
	for _, a := range p.Answers {
		if err := answers.Set(a.QuestionID, a.Value); err != nil {
			s.logger.Warn("discarding saved progress", zap.Error(err))
			return false, s.storage.ClearProgress(ctx)
		}
	}

	s.id = p.SessionID
	if s.id == "" {
		s.id = uuid.NewString()
	}
	s.userName = p.UserName
	s.index = clampIndex(p.CurrentQuestionIndex)
	s.answers = answers
	s.startedAt = p.StartedAt
	s.outcome = nil
	if len(strings.TrimSpace(s.userName)) < MinNameLength {
		s.phase = PhaseIntro
		return false, nil
	}
	s.phase = PhaseQuestions
	s.logger.Info("resumed assessment",
		zap.String("session_id", s.id),
		zap.Int("index", s.index),
		zap.Int("answered", s.answers.Answered()))
	return true, nil
}

// Start begins a fresh assessment for name.
func (s *Session) Start(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < MinNameLength {
		return ErrNameTooShort
	}
	s.id = uuid.NewString()
	s.userName = name
	s.index = 0
	s.answers = disc.NewAnswerSet()
	s.phase = PhaseQuestions
	s.startedAt = s.now()
	s.outcome = nil
	s.logger.Info("assessment started", zap.String("session_id", s.id))
	return s.save(ctx)
}

// Select records value for the current question.
func (s *Session) Select(ctx context.Context, value int) error {
	if s.phase != PhaseQuestions {
		return ErrNotStarted
	}
	q, _ := disc.QuestionAt(s.index)
	if err := s.answers.Set(q.ID, value); err != nil {
		return err
	}
	return s.save(ctx)
}

// Next moves to the following question. On the last question it reports
// done=true and leaves the index unchanged; the caller then calls Complete.
func (s *Session) Next(ctx context.Context) (done bool, err error) {
	if s.phase != PhaseQuestions {
		return false, ErrNotStarted
	}
	if s.CurrentValue() == disc.Unanswered {
		return false, ErrUnanswered
	}
	if s.IsLast() {
		return true, nil
	}
	s.index++
	return false, s.save(ctx)
}

// Previous moves back one question. It is a no-op on the first question.
func (s *Session) Previous(ctx context.Context) error {
	if s.phase != PhaseQuestions {
		return ErrNotStarted
	}
	if s.index == 0 {
		return nil
	}
	s.index--
	return s.save(ctx)
}

// Complete scores the answers, hands the outcome to the result sink and
// clears saved progress.
func (s *Session) Complete(ctx context.Context) (*Outcome, error) {
	if s.phase == PhaseCompleted && s.outcome != nil {
		return s.outcome, nil
	}
	if s.phase != PhaseQuestions {
		return nil, ErrNotStarted
	}
	res, err := disc.Evaluate(s.answers)
	if err != nil {
		return nil, err
	}

	o := &Outcome{
		SessionID:   s.id,
		UserName:    s.userName,
		Language:    s.lang,
		Answers:     s.answers.Clone(),
		Result:      res,
		StartedAt:   s.startedAt,
		CompletedAt: s.now(),
	}
	if s.results != nil {
		if err := s.results.SaveOutcome(ctx, o); err != nil {
			return nil, fmt.Errorf("save result: %w", err)
		}
	}
	if s.storage != nil {
		if err := s.storage.ClearProgress(ctx); err != nil {
			return nil, fmt.Errorf("clear progress: %w", err)
		}
	}

	s.phase = PhaseCompleted
	s.outcome = o
	s.logger.Info("assessment completed",
		zap.String("session_id", s.id),
		zap.String("primary", res.Primary.Dimension.Code()),
		zap.String("secondary", res.Secondary.Dimension.Code()))
	return o, nil
}

// Reset discards the answers and saved progress for a retake. The user
// name is kept so the intro can be prefilled.
func (s *Session) Reset(ctx context.Context) error {
	s.id = ""
	s.index = 0
	s.answers = disc.NewAnswerSet()
	s.phase = PhaseIntro
	s.outcome = nil
	if s.storage != nil {
		if err := s.storage.ClearProgress(ctx); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
	}
	return nil
}

// SetLanguage changes the language recorded on the outcome.
func (s *Session) SetLanguage(lang string) { s.lang = lang }

// ID returns the session id, empty before Start.
func (s *Session) ID() string { return s.id }

// UserName returns the user's name.
func (s *Session) UserName() string { return s.userName }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions.
func (s *Session) Total() int { return disc.QuestionCount }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool { return s.index == disc.QuestionCount-1 }

// Current returns the current question.
func (s *Session) Current() disc.Question {
	q, _ := disc.QuestionAt(s.index)
	return q
}

// CurrentValue returns the answer recorded for the current question.
func (s *Session) CurrentValue() int {
	return s.answers.Value(s.Current().ID)
}

// Answers returns a copy of the answer set.
func (s *Session) Answers() disc.AnswerSet { return s.answers.Clone() }

// Outcome returns the completed outcome, nil until Complete succeeds.
func (s *Session) Outcome() *Outcome { return s.outcome }

func (s *Session) save(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	p := &Progress{
		SessionID:            s.id,
		UserName:             s.userName,
		CurrentQuestionIndex: s.index,
		TotalQuestions:       disc.QuestionCount,
		Answers:              s.answers.Clone(),
		StartedAt:            s.startedAt,
		UpdatedAt:            s.now(),
	}
	if err := s.storage.SaveProgress(ctx, p); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= disc.QuestionCount {
		return disc.QuestionCount - 1
	}
	return i
}
