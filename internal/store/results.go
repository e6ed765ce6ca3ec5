package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/session"
)

// ResultRepo stores completed assessments.
type ResultRepo struct {
	db *sql.DB
}

var _ session.ResultSink = (*ResultRepo)(nil)

var resultColumns = []string{
	colID, colUID, colSessionID, colUserName, colLanguage,
	colDominance, colInfluence, colSteadiness, colCompliance,
	colPrimary, colSecondary, colAnswers, colStartedAt, colCompletedAt,
}

// RecordFromOutcome converts a completed session into a result record.
// UID is the outcome's ResultID, empty until the outcome is stored.
func RecordFromOutcome(o *session.Outcome) *ResultRecord {
	return &ResultRecord{
		UID:         o.ResultID,
		SessionID:   o.SessionID,
		UserName:    o.UserName,
		Language:    o.Language,
		Scores:      o.Result.Scores,
		Primary:     o.Result.Primary.Dimension,
		Secondary:   o.Result.Secondary.Dimension,
		Answers:     o.Answers,
		StartedAt:   o.StartedAt,
		CompletedAt: o.CompletedAt,
	}
}

// SaveOutcome stores a completed session and records the new result id on o.
func (r *ResultRepo) SaveOutcome(ctx context.Context, o *session.Outcome) error {
	rec := RecordFromOutcome(o)
	if err := r.Save(ctx, rec); err != nil {
		return err
	}
	o.ResultID = rec.UID
	return nil
}

// Save inserts rec, assigning UID when empty and ID from the database.
func (r *ResultRepo) Save(ctx context.Context, rec *ResultRecord) error {
	if rec.UID == "" {
		rec.UID = uuid.NewString()
	}
	if rec.Language == "" {
		rec.Language = "en"
	}
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	query, args := builder().Insert(resultsTable).
		Columns(resultColumns[1:]...).
		Values(
			rec.UID, rec.SessionID, rec.UserName, rec.Language,
			rec.Scores.Dominance, rec.Scores.Influence, rec.Scores.Steadiness, rec.Scores.Compliance,
			rec.Primary.Code(), rec.Secondary.Code(), string(answers),
			formatTime(rec.StartedAt), formatTime(rec.CompletedAt),
		).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = int(id)
	}
	return nil
}

// List returns results newest first. limit <= 0 means no limit.
func (r *ResultRepo) List(ctx context.Context, limit int) ([]*ResultRecord, error) {
	sel := builder().Select(resultColumns...).
		From(entsql.Table(resultsTable)).
		OrderBy(entsql.Desc(colCompletedAt), entsql.Desc(colID))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []*ResultRecord
	for rows.Next() {
		rec, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Latest returns the most recent result, or nil if none exist.
func (r *ResultRepo) Latest(ctx context.Context) (*ResultRecord, error) {
	recs, err := r.List(ctx, 1)
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return recs[0], nil
}

// Get returns the result whose UID starts with prefix, or nil if none
// match. A prefix matching several results is an error.
func (r *ResultRepo) Get(ctx context.Context, prefix string) (*ResultRecord, error) {
	if prefix == "" {
		return nil, nil
	}
	query, args := builder().Select(resultColumns...).
		From(entsql.Table(resultsTable)).
		Where(entsql.HasPrefix(colUID, prefix)).
		Limit(2).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}
	defer rows.Close()

	var found []*ResultRecord
	for rows.Next() {
		rec, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("result id %q is ambiguous", prefix)
	}
}

// Clear deletes every stored result.
func (r *ResultRepo) Clear(ctx context.Context) (int64, error) {
	query, args := builder().Delete(resultsTable).Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clear results: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(s scanner) (*ResultRecord, error) {
	var (
		rec                    ResultRecord
		primary, secondary     string
		answers                string
		startedAt, completedAt string
	)
	err := s.Scan(
		&rec.ID, &rec.UID, &rec.SessionID, &rec.UserName, &rec.Language,
		&rec.Scores.Dominance, &rec.Scores.Influence, &rec.Scores.Steadiness, &rec.Scores.Compliance,
		&primary, &secondary, &answers, &startedAt, &completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan result: %w", err)
	}
	if rec.Primary, err = disc.ParseDimension(primary); err != nil {
		return nil, fmt.Errorf("result %s: %w", rec.UID, err)
	}
	if rec.Secondary, err = disc.ParseDimension(secondary); err != nil {
		return nil, fmt.Errorf("result %s: %w", rec.UID, err)
	}
	if answers != "" && answers != "null" {
		if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
			return nil, fmt.Errorf("result %s: decode answers: %w", rec.UID, err)
		}
	}
	rec.StartedAt = parseTime(startedAt)
	rec.CompletedAt = parseTime(completedAt)
	return &rec, nil
}
