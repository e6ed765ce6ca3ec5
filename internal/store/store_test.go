package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "disc.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if !strings.EqualFold(mode, "wal") {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disc.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Settings().Set(ctx, KeyLanguage, "es"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	// Migration on an existing database is a no-op.
	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Settings().Get(ctx, KeyLanguage)
	if err != nil || !ok || v != "es" {
		t.Errorf("get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"settings", "results", "exports"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestSettings(t *testing.T) {
	s := openTestStore(t)
	repo := s.Settings()
	ctx := context.Background()

	if _, ok, err := repo.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("get missing = %v, %v", ok, err)
	}

	if err := repo.Set(ctx, "k", "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "k", "two"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := repo.Get(ctx, "k")
	if err != nil || !ok || v != "two" {
		t.Errorf("get = %q, %v, %v; want two", v, ok, err)
	}

	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "k"); ok {
		t.Error("expected key to be deleted")
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting a missing key: %v", err)
	}
}

func TestSettingsJSON(t *testing.T) {
	s := openTestStore(t)
	repo := s.Settings()
	ctx := context.Background()

	type cfg struct {
		URL   string `json:"url"`
		Token string `json:"token"`
	}
	if err := repo.SetJSON(ctx, KeySheetConfig, cfg{URL: "u", Token: "t"}); err != nil {
		t.Fatalf("set json: %v", err)
	}
	var got cfg
	ok, err := repo.GetJSON(ctx, KeySheetConfig, &got)
	if err != nil || !ok {
		t.Fatalf("get json = %v, %v", ok, err)
	}
	if got.URL != "u" || got.Token != "t" {
		t.Errorf("got %+v", got)
	}

	if err := repo.Set(ctx, "broken", "{"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetJSON(ctx, "broken", &got); err == nil {
		t.Error("expected decode error")
	}
}

func TestProgressRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	p, err := repo.LoadProgress(ctx)
	if err != nil || p != nil {
		t.Fatalf("load empty = %v, %v", p, err)
	}

	answers := disc.NewAnswerSet()
	answers[0].Value = 3
	want := &session.Progress{
		SessionID:            "abc",
		UserName:             "Grace",
		CurrentQuestionIndex: 1,
		TotalQuestions:       disc.QuestionCount,
		Answers:              answers,
	}
	if err := repo.SaveProgress(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadProgress(ctx)
	if err != nil || got == nil {
		t.Fatalf("load = %v, %v", got, err)
	}
	if got.UserName != "Grace" || got.CurrentQuestionIndex != 1 || got.Answers.Value(1) != 3 {
		t.Errorf("load = %+v", got)
	}
	if got.Answers[0].Dimension != disc.Dominance {
		t.Errorf("dimension = %v, want Dominance", got.Answers[0].Dimension)
	}

	if err := repo.ClearProgress(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if p, _ := repo.LoadProgress(ctx); p != nil {
		t.Error("expected progress to be cleared")
	}
	if name, _ := repo.LastUserName(ctx); name != "Grace" {
		t.Errorf("last name = %q, want Grace", name)
	}
}

func TestSessionWithStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess := session.New(session.Options{Storage: s.Progress(), Results: s.Results(), Language: "es"})
	if err := sess.Start(ctx, "Ada"); err != nil {
		t.Fatal(err)
	}
	for {
		if err := sess.Select(ctx, 2); err != nil {
			t.Fatal(err)
		}
		done, err := sess.Next(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if done {
			break
		}
	}
	out, err := sess.Complete(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	rec, err := s.Results().Latest(ctx)
	if err != nil || rec == nil {
		t.Fatalf("latest = %v, %v", rec, err)
	}
	if rec.UID != out.ResultID {
		t.Errorf("outcome result id = %q, want %q", out.ResultID, rec.UID)
	}
	if rec.UserName != "Ada" || rec.Language != "es" || rec.SessionID != sess.ID() {
		t.Errorf("record = %+v", rec)
	}
	if rec.Scores.Dominance != 33 {
		t.Errorf("dominance = %d, want 33", rec.Scores.Dominance)
	}
	if len(rec.Answers) != disc.QuestionCount {
		t.Errorf("answers = %d, want %d", len(rec.Answers), disc.QuestionCount)
	}
}

func saveResult(t *testing.T, repo *ResultRepo, name string, scores disc.Scores, at time.Time) *ResultRecord {
	t.Helper()
	res := disc.ResultFromScores(scores)
	rec := &ResultRecord{
		UserName:    name,
		Scores:      scores,
		Primary:     res.Primary.Dimension,
		Secondary:   res.Secondary.Dimension,
		CompletedAt: at,
	}
	if err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
	return rec
}

func TestResultsListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	saveResult(t, repo, "first", disc.Scores{Dominance: 80}, base)
	saveResult(t, repo, "second", disc.Scores{Influence: 80}, base.Add(time.Minute))
	saveResult(t, repo, "third", disc.Scores{Compliance: 80, Steadiness: 60}, base.Add(2*time.Minute))

	recs, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len = %d, want 3", len(recs))
	}
	if recs[0].UserName != "third" || recs[2].UserName != "first" {
		t.Errorf("order = %s, %s, %s", recs[0].UserName, recs[1].UserName, recs[2].UserName)
	}
	if recs[0].Primary != disc.Compliance || recs[0].Secondary != disc.Steadiness {
		t.Errorf("traits = %v/%v", recs[0].Primary, recs[0].Secondary)
	}
	if !recs[0].CompletedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("completed at = %v", recs[0].CompletedAt)
	}

	limited, err := repo.List(ctx, 2)
	if err != nil || len(limited) != 2 {
		t.Errorf("limited list = %d, %v", len(limited), err)
	}
}

func TestResultsGetByPrefix(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	rec := saveResult(t, repo, "only", disc.Scores{Dominance: 50}, time.Now())

	got, err := repo.Get(ctx, rec.UID[:8])
	if err != nil || got == nil {
		t.Fatalf("get = %v, %v", got, err)
	}
	if got.UID != rec.UID {
		t.Errorf("uid = %q, want %q", got.UID, rec.UID)
	}

	missing, err := repo.Get(ctx, "zzzz")
	if err != nil || missing != nil {
		t.Errorf("missing = %v, %v", missing, err)
	}

	saveResult(t, repo, "another", disc.Scores{}, time.Now())
	// LIKE wildcards in the prefix are matched literally.
	wild, err := repo.Get(ctx, "%")
	if err != nil || wild != nil {
		t.Errorf("wildcard prefix = %v, %v", wild, err)
	}
}

func TestResultsLatestAndClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	rec, err := repo.Latest(ctx)
	if err != nil || rec != nil {
		t.Fatalf("latest (empty) = %v, %v", rec, err)
	}

	saveResult(t, repo, "a", disc.Scores{}, time.Now())
	saveResult(t, repo, "b", disc.Scores{}, time.Now().Add(time.Second))

	rec, err = repo.Latest(ctx)
	if err != nil || rec == nil || rec.UserName != "b" {
		t.Fatalf("latest = %v, %v", rec, err)
	}

	n, err := repo.Clear(ctx)
	if err != nil || n != 2 {
		t.Errorf("clear = %d, %v", n, err)
	}
	recs, _ := repo.List(ctx, 0)
	if len(recs) != 0 {
		t.Errorf("remaining = %d, want 0", len(recs))
	}
}

func TestExports(t *testing.T) {
	s := openTestStore(t)
	repo := s.Exports()
	ctx := context.Background()

	for i, status := range []ExportStatus{ExportFailed, ExportSucceeded} {
		err := repo.Append(ctx, &ExportRecord{
			ResultUID: "r1",
			UserID:    "u1",
			ScriptURL: "https://script.google.com/macros/s/x/exec",
			Status:    status,
			Payload:   fmt.Sprintf(`{"n":%d}`, i),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.Append(ctx, &ExportRecord{ResultUID: "r2", Status: ExportSucceeded}); err != nil {
		t.Fatal(err)
	}

	recs, err := repo.List(ctx, "r1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].Status != ExportSucceeded || recs[0].Payload != `{"n":1}` {
		t.Errorf("newest = %+v", recs[0])
	}
	if recs[0].CreatedAt.IsZero() {
		t.Error("expected created at to be set")
	}

	all, _ := repo.List(ctx, "", 0)
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	all, _ = repo.List(ctx, "", 0)
	if len(all) != 0 {
		t.Errorf("after clear = %d", len(all))
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("DISC_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	if err != nil || p != filepath.Join(dir, "custom", "x.db") {
		t.Errorf("DISC_DB path = %q, %v", p, err)
	}

	t.Setenv("DISC_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil || p != filepath.Join(dir, "disc", "disc.db") {
		t.Errorf("XDG path = %q, %v", p, err)
	}
}
