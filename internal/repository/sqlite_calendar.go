package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ellisbraun/haven/internal/db"
	"github.com/ellisbraun/haven/internal/domain"
)

const entryColumns = `id, user_id, title, start_time, end_time, color, is_generated, completed, user_mood`

// SQLiteCalendarRepo implements CalendarRepo over a SQLite database. It is
// constructed over db.DBTX so the same repository code runs standalone or
// inside a unit-of-work transaction.
type SQLiteCalendarRepo struct {
	db db.DBTX
}

func NewSQLiteCalendarRepo(dbtx db.DBTX) *SQLiteCalendarRepo {
	return &SQLiteCalendarRepo{db: dbtx}
}

func (r *SQLiteCalendarRepo) Insert(ctx context.Context, e *domain.CalendarEntry) error {
	query := `INSERT INTO calendar_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Title,
		e.Start.Format(time.RFC3339),
		e.End.Format(time.RFC3339),
		e.Color,
		boolToInt(e.IsGenerated),
		boolToInt(e.Completed),
		nullableIntToValue(e.UserMood),
	)
	if err != nil {
		return fmt.Errorf("inserting calendar entry: %w", err)
	}
	return nil
}

func (r *SQLiteCalendarRepo) GetByID(ctx context.Context, id string) (*domain.CalendarEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM calendar_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanEntry(row)
}

func (r *SQLiteCalendarRepo) ListByUser(ctx context.Context, userID string) ([]*domain.CalendarEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM calendar_entries WHERE user_id = ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing calendar entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteCalendarRepo) ListSince(ctx context.Context, userID string, since time.Time) ([]*domain.CalendarEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM calendar_entries
		WHERE user_id = ? AND start_time >= ? ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, userID, since.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing calendar entries since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteCalendarRepo) DeleteGenerated(ctx context.Context, userID string) error {
	query := `DELETE FROM calendar_entries WHERE user_id = ? AND is_generated = 1`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("deleting generated entries: %w", err)
	}
	return nil
}

func (r *SQLiteCalendarRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	query := `DELETE FROM calendar_entries WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("clearing calendar entries: %w", err)
	}
	return nil
}

func (r *SQLiteCalendarRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting calendar entry: %w", err)
	}
	return requireRowAffected(res, "calendar entry")
}

func (r *SQLiteCalendarRepo) UpdateCompletion(ctx context.Context, id string, completed bool, mood *int) error {
	query := `UPDATE calendar_entries SET completed = ?, user_mood = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(completed), nullableIntToValue(mood), id)
	if err != nil {
		return fmt.Errorf("updating entry completion: %w", err)
	}
	return requireRowAffected(res, "calendar entry")
}

func (r *SQLiteCalendarRepo) UpdateSchedule(ctx context.Context, id string, start, end time.Time) error {
	query := `UPDATE calendar_entries SET start_time = ?, end_time = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, start.Format(time.RFC3339), end.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating entry schedule: %w", err)
	}
	return requireRowAffected(res, "calendar entry")
}

// requireRowAffected turns a zero-row mutation into ErrNotFound.
func requireRowAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCalendarRepo) scanEntry(row *sql.Row) (*domain.CalendarEntry, error) {
	var e domain.CalendarEntry
	var startStr, endStr string
	var isGenerated, completed int
	var mood sql.NullInt64

	err := row.Scan(&e.ID, &e.UserID, &e.Title, &startStr, &endStr, &e.Color, &isGenerated, &completed, &mood)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("calendar entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning calendar entry: %w", err)
	}
	return r.populateEntry(&e, startStr, endStr, isGenerated, completed, mood)
}

func (r *SQLiteCalendarRepo) scanEntries(rows *sql.Rows) ([]*domain.CalendarEntry, error) {
	var entries []*domain.CalendarEntry
	for rows.Next() {
		var e domain.CalendarEntry
		var startStr, endStr string
		var isGenerated, completed int
		var mood sql.NullInt64

		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &startStr, &endStr, &e.Color, &isGenerated, &completed, &mood); err != nil {
			return nil, fmt.Errorf("scanning calendar row: %w", err)
		}
		entry, err := r.populateEntry(&e, startStr, endStr, isGenerated, completed, mood)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar entries: %w", err)
	}
	return entries, nil
}

// populateEntry fills in parsed fields after scanning raw column values.
func (r *SQLiteCalendarRepo) populateEntry(e *domain.CalendarEntry, startStr, endStr string, isGenerated, completed int, mood sql.NullInt64) (*domain.CalendarEntry, error) {
	var err error
	e.Start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	e.End, err = time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("parsing end_time: %w", err)
	}
	e.IsGenerated = isGenerated != 0
	e.Completed = completed != 0
	e.UserMood = nullableIntFromSQL(mood)
	return e, nil
}
