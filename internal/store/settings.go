package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/disc/internal/session"
)

// SettingsRepo is a small key-value table for preferences and in-flight state.
type SettingsRepo struct {
	db *sql.DB
}

// Get returns the value for key and whether it exists.
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args := builder().Select(colValue).
		From(entsql.Table(settingsTable)).
		Where(entsql.EQ(colKey, key)).
		Limit(1).
		Query()

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	query, args := builder().Insert(settingsTable).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, formatTime(time.Now())).
		OnConflict(entsql.ConflictColumns(colKey), entsql.ResolveWithNewValues()).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *SettingsRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().Delete(settingsTable).
		Where(entsql.EQ(colKey, key)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}

// GetJSON decodes the value under key into v. It reports false when the key
// is missing.
func (r *SettingsRepo) GetJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode setting %q: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func (r *SettingsRepo) SetJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode setting %q: %w", key, err)
	}
	return r.Set(ctx, key, string(b))
}

// ProgressRepo implements session.Storage on top of the settings table.
type ProgressRepo struct {
	settings *SettingsRepo
}

var _ session.Storage = (*ProgressRepo)(nil)

func (r *ProgressRepo) LoadProgress(ctx context.Context) (*session.Progress, error) {
	var p session.Progress
	ok, err := r.settings.GetJSON(ctx, KeyProgress, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepo) SaveProgress(ctx context.Context, p *session.Progress) error {
	if err := r.settings.SetJSON(ctx, KeyProgress, p); err != nil {
		return err
	}
	// Remember the name separately so a retake can prefill it.
	return r.settings.Set(ctx, KeyLastName, p.UserName)
}

func (r *ProgressRepo) ClearProgress(ctx context.Context) error {
	return r.settings.Delete(ctx, KeyProgress)
}

// LastUserName returns the most recent name used to start an assessment.
func (r *ProgressRepo) LastUserName(ctx context.Context) (string, error) {
	name, _, err := r.settings.Get(ctx, KeyLastName)
	return name, err
}
