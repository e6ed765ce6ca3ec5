package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/disc/internal/disc"
)

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*Session, *MemoryStorage) {
	t.Helper()
	mem := NewMemoryStorage()
	s := New(Options{Storage: mem, Results: mem, Now: func() time.Time { return fixedNow }})
	return s, mem
}

// answerAll selects value on every question, advancing as the TUI would.
func answerAll(t *testing.T, s *Session, value int) {
	t.Helper()
	ctx := context.Background()
	for {
		require.NoError(t, s.Select(ctx, value))
		done, err := s.Next(ctx)
		require.NoError(t, err)
		if done {
			return
		}
	}
}

func TestStart_RejectsShortName(t *testing.T) {
	s, mem := newTestSession(t)
	for _, name := range []string{"", "  ", "A", " b "} {
		assert.ErrorIs(t, s.Start(context.Background(), name), ErrNameTooShort, "name %q", name)
	}
	assert.Equal(t, PhaseIntro, s.Phase())
	p, _ := mem.LoadProgress(context.Background())
	assert.Nil(t, p)
}

func TestStart_SavesProgress(t *testing.T) {
	s, mem := newTestSession(t)
	require.NoError(t, s.Start(context.Background(), "  Ada Lovelace "))

	assert.Equal(t, "Ada Lovelace", s.UserName())
	assert.Equal(t, PhaseQuestions, s.Phase())
	assert.NotEmpty(t, s.ID())

	p, err := mem.LoadProgress(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Ada Lovelace", p.UserName)
	assert.Equal(t, 0, p.CurrentQuestionIndex)
	assert.Equal(t, disc.QuestionCount, p.TotalQuestions)
	assert.Len(t, p.Answers, disc.QuestionCount)
}

func TestQuestionOps_BeforeStart(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	assert.ErrorIs(t, s.Select(ctx, 2), ErrNotStarted)
	_, err := s.Next(ctx)
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.ErrorIs(t, s.Previous(ctx), ErrNotStarted)
	_, err = s.Complete(ctx)
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestNext_RequiresAnswer(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx, "Grace"))

	_, err := s.Next(ctx)
	assert.ErrorIs(t, err, ErrUnanswered)
	assert.Equal(t, 0, s.Index())

	require.NoError(t, s.Select(ctx, 3))
	done, err := s.Next(ctx)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, s.Index())
}

func TestSelect_RejectsOutOfRange(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx, "Grace"))
	err := s.Select(ctx, 5)
	assert.True(t, errors.Is(err, disc.ErrOutOfRange))
	assert.Equal(t, disc.Unanswered, s.CurrentValue())
}

func TestPrevious(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx, "Grace"))

	require.NoError(t, s.Previous(ctx))
	assert.Equal(t, 0, s.Index())

	require.NoError(t, s.Select(ctx, 4))
	_, err := s.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Previous(ctx))
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 4, s.CurrentValue(), "revisited answer is kept")

	// Overwrite on revisit.
	require.NoError(t, s.Select(ctx, 1))
	assert.Equal(t, 1, s.CurrentValue())
}

func TestComplete(t *testing.T) {
	s, mem := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx, "Grace"))
	answerAll(t, s, 4)
	assert.True(t, s.IsLast())

	o, err := s.Complete(ctx)
	require.NoError(t, err)
	assert.Equal(t, PhaseCompleted, s.Phase())
	assert.Equal(t, "Grace", o.UserName)
	assert.Equal(t, disc.Scores{Dominance: 100, Influence: 100, Steadiness: 100, Compliance: 100}, o.Result.Scores)
	assert.Equal(t, fixedNow, o.CompletedAt)

	require.Len(t, mem.Outcomes(), 1)
	p, err := mem.LoadProgress(ctx)
	require.NoError(t, err)
	assert.Nil(t, p, "progress is cleared after completion")

	again, err := s.Complete(ctx)
	require.NoError(t, err)
	assert.Same(t, o, again)
	assert.Len(t, mem.Outcomes(), 1)
}

func TestComplete_Incomplete(t *testing.T) {
	s, mem := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx, "Grace"))
	require.NoError(t, s.Select(ctx, 2))

	_, err := s.Complete(ctx)
	assert.ErrorIs(t, err, disc.ErrIncompleteInput)
	assert.Equal(t, PhaseQuestions, s.Phase())
	assert.Empty(t, mem.Outcomes())
}

func TestResume(t *testing.T) {
	first, mem := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, first.Start(ctx, "Grace"))
	for i := 0; i < 3; i++ {
		require.NoError(t, first.Select(ctx, 3))
		_, err := first.Next(ctx)
		require.NoError(t, err)
	}

	second := New(Options{Storage: mem, Results: mem})
	ok, err := second.Resume(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, "Grace", second.UserName())
	assert.Equal(t, 3, second.Index())
	assert.Equal(t, 3, second.Answers().Answered())
	assert.Equal(t, PhaseQuestions, second.Phase())
}

func TestResume_NothingSaved(t *testing.T) {
	s, _ := newTestSession(t)
	ok, err := s.Resume(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = New(Options{}).Resume(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResume_DiscardsCorruptProgress(t *testing.T) {
	s, mem := newTestSession(t)
	ctx := context.Background()
	bad := disc.NewAnswerSet()
	bad[0].Value = 9
	require.NoError(t, mem.SaveProgress(ctx, &Progress{UserName: "Grace", Answers: bad}))

	ok, err := s.Resume(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	p, _ := mem.LoadProgress(ctx)
	assert.Nil(t, p)
}

func TestReset_KeepsName(t *testing.T) {
	s, mem := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx, "Grace"))
	answerAll(t, s, 2)
	_, err := s.Complete(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	assert.Equal(t, "Grace", s.UserName())
	assert.Equal(t, PhaseIntro, s.Phase())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 0, s.Answers().Answered())
	assert.Nil(t, s.Outcome())
	p, _ := mem.LoadProgress(ctx)
	assert.Nil(t, p)
}
