package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// ExportRepo logs spreadsheet export attempts.
type ExportRepo struct {
	db *sql.DB
}

var exportColumns = []string{
	colID, colResultUID, colUserID, colScriptURL, colStatus, colPayload, colError, colCreatedAt,
}

// Append records an export attempt.
func (r *ExportRepo) Append(ctx context.Context, rec *ExportRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	query, args := builder().Insert(exportsTable).
		Columns(exportColumns[1:]...).
		Values(rec.ResultUID, rec.UserID, rec.ScriptURL, string(rec.Status), rec.Payload, rec.Error, formatTime(rec.CreatedAt)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("append export: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = int(id)
	}
	return nil
}

// List returns export attempts newest first, optionally for one result.
func (r *ExportRepo) List(ctx context.Context, resultUID string, limit int) ([]*ExportRecord, error) {
	sel := builder().Select(exportColumns...).
		From(entsql.Table(exportsTable)).
		OrderBy(entsql.Desc(colID))
	if resultUID != "" {
		sel.Where(entsql.EQ(colResultUID, resultUID))
	}
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	var out []*ExportRecord
	for rows.Next() {
		var (
			rec               ExportRecord
			status, createdAt string
		)
		if err := rows.Scan(&rec.ID, &rec.ResultUID, &rec.UserID, &rec.ScriptURL,
			&status, &rec.Payload, &rec.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		rec.Status = ExportStatus(status)
		rec.CreatedAt = parseTime(createdAt)
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Clear deletes the export log.
func (r *ExportRepo) Clear(ctx context.Context) error {
	query, args := builder().Delete(exportsTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear exports: %w", err)
	}
	return nil
}
