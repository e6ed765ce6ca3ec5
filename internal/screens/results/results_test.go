package results

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/screen"
	"github.com/abhisek/disc/internal/screens/screentest"
	"github.com/abhisek/disc/internal/session"
	"github.com/abhisek/disc/internal/store"
)

// Menu positions.
const (
	itemCertificate = iota
	itemExport
	itemRetake
)

func savedRecord(t *testing.T, env *screen.Env) *store.ResultRecord {
	t.Helper()
	scores := disc.Scores{Dominance: 60, Influence: 87, Steadiness: 40, Compliance: 13}
	r := disc.ResultFromScores(scores)
	rec := &store.ResultRecord{
		UserName:    "Ada Lovelace",
		Language:    "en",
		Scores:      scores,
		Primary:     r.Primary.Dimension,
		Secondary:   r.Secondary.Dimension,
		CompletedAt: time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC),
	}
	require.NoError(t, env.Store.Results().Save(context.Background(), rec))
	return rec
}

// choose moves the menu to item and presses enter, returning the message
// produced by the action.
func choose(t *testing.T, s *ResultsScreen, item int) any {
	t.Helper()
	s.menu.Selected = item
	_, cmd := s.Update(screentest.Enter)
	return screentest.Run(cmd)
}

func TestView(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, savedRecord(t, env))

	view := s.View(100, 60)
	assert.Contains(t, view, "Ada Lovelace · March 5, 2024")
	assert.Contains(t, view, "Influence (87%)")
	assert.Contains(t, view, "Dominance (60%)")
	assert.Contains(t, view, i18n.T(i18n.English, i18n.ResultsKeyInsight))
	assert.Contains(t, view, "Check out my DISC profile: D: 60%, I: 87%, S: 40%, C: 13%")
}

func TestViewCompactSkipsTable(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, savedRecord(t, env))

	view := s.View(100, 18)
	assert.NotContains(t, view, i18n.T(i18n.English, i18n.ResultsTable))
	assert.Contains(t, view, i18n.T(i18n.English, i18n.ResultsKeyInsight))
}

func TestViewNoResult(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, nil)

	assert.Contains(t, s.View(100, 30), i18n.T(i18n.English, i18n.ResultsNone))
	assert.Equal(t, itemRetake, s.menu.Selected, "actions on a result are disabled")
}

func TestCertificate(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, savedRecord(t, env))

	msg := choose(t, s, itemCertificate)
	written, ok := msg.(certificateMsg)
	require.True(t, ok, "expected certificateMsg, got %T", msg)
	require.NoError(t, written.Err)
	assert.Equal(t, filepath.Join(env.OutputDir, "DISC_Certificate_Ada_Lovelace_2024-03-05.pdf"), written.Path)

	data, err := os.ReadFile(written.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))

	s.Update(written)
	assert.Contains(t, s.status, written.Path)
	assert.False(t, s.failed)
}

func TestExportRequiresLogin(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, savedRecord(t, env))

	s.Update(choose(t, s, itemExport))
	assert.Equal(t, i18n.T(i18n.English, i18n.ExportLoginRequired), s.status)
	assert.True(t, s.failed)

	logged, err := env.Store.Exports().List(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, logged)
}

func TestExportSignedIn(t *testing.T) {
	env := screentest.NewEnv(t)
	rec := savedRecord(t, env)
	_, err := env.Accounts.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	s := New(env, rec)

	s.Update(choose(t, s, itemExport))
	assert.Equal(t, i18n.T(i18n.English, i18n.ExportSuccess), s.status)

	logged, err := env.Store.Exports().List(context.Background(), rec.UID, 0)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, store.ExportSucceeded, logged[0].Status)
}

func TestRetakeResetsSession(t *testing.T) {
	env := screentest.NewEnv(t)
	require.NoError(t, env.Session.Start(context.Background(), "Ada"))
	s := New(env, savedRecord(t, env))

	msg := choose(t, s, itemRetake)
	assert.IsType(t, RetakeMsg{}, msg)
	assert.Equal(t, session.PhaseIntro, env.Session.Phase())
	assert.Equal(t, "Ada", env.Session.UserName())
}

func TestKeysIgnoredWhileBusy(t *testing.T) {
	env := screentest.NewEnv(t)
	s := New(env, savedRecord(t, env))
	s.busy = true

	_, cmd := s.Update(screentest.Enter)
	assert.Nil(t, cmd)
}

func TestScoreBar(t *testing.T) {
	bar := ScoreBar(i18n.Spanish, disc.Steadiness, 40, 60)
	assert.Contains(t, bar, "S Estabilidad")
	assert.Contains(t, bar, "40%")
}

func TestRelationshipTable(t *testing.T) {
	r := i18n.Localize(i18n.Spanish, disc.ResultFromScores(disc.Scores{Dominance: 100}))
	out := RelationshipTable(i18n.Spanish, r, 90)
	assert.Contains(t, out, "Dimensión")
	assert.Contains(t, out, "Dominancia")
	assert.Contains(t, out, "100%")
}
