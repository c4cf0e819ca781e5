// Package store provides SQLite-backed persistence for exercise records and goals.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/training/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver
)

// Fixed-width so stored timestamps sort lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store owns all records and goals.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, model.IOError("creating data dir", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, model.IOError("opening database", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, model.IOError("creating schema", err)
	}

	return &Store{db: db, path: dbPath, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(v string) (time.Time, error) {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", v, err)
	}
	return t, nil
}

// AppendRecord stores a new record and returns it with ID and Seq set.
// A zero Timestamp is replaced by the current time.
func (s *Store) AppendRecord(ctx context.Context, r model.Record) (model.Record, error) {
	if err := model.CheckReps("reps", r.Reps); err != nil {
		return model.Record{}, err
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = s.now()
	}
	r.ID = uuid.NewString()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO records (id, exercise_type, reps, logged_at) VALUES (?, ?, ?, ?)",
		r.ID, r.ExerciseType, r.Reps, formatTime(r.Timestamp),
	)
	if err != nil {
		return model.Record{}, model.IOError("appending record", err)
	}
	r.Seq, err = res.LastInsertId()
	if err != nil {
		return model.Record{}, model.IOError("reading record id", err)
	}
	return r, nil
}

func whereClause(f model.Filter) (string, []any) {
	var conds []string
	var args []any
	if f.ExerciseType != "" {
		conds = append(conds, "exercise_type = ?")
		args = append(args, f.ExerciseType)
	}
	if !f.Since.IsZero() {
		conds = append(conds, "logged_at >= ?")
		args = append(args, formatTime(f.Since))
	}
	if !f.Until.IsZero() {
		conds = append(conds, "logged_at < ?")
		args = append(args, formatTime(f.Until))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListRecords returns matching records in insertion order.
func (s *Store) ListRecords(ctx context.Context, f model.Filter) ([]model.Record, error) {
	where, args := whereClause(f)
	rows, err := s.db.QueryContext(ctx,
		"SELECT seq, id, exercise_type, reps, logged_at FROM records"+where+" ORDER BY seq", args...)
	if err != nil {
		return nil, model.IOError("listing records", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		var loggedAt string
		if err := rows.Scan(&r.Seq, &r.ID, &r.ExerciseType, &r.Reps, &loggedAt); err != nil {
			return nil, model.IOError("reading record", err)
		}
		if r.Timestamp, err = parseTime(loggedAt); err != nil {
			return nil, model.IOError("reading record", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, model.IOError("listing records", err)
	}
	return records, nil
}

// SetGoal creates or replaces the goal for g.ExerciseType.
func (s *Store) SetGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	if err := model.CheckReps("daily goal", g.Daily); err != nil {
		return model.Goal{}, err
	}
	if err := model.CheckReps("weekly goal", g.Weekly); err != nil {
		return model.Goal{}, err
	}
	g.UpdatedAt = s.now()
	_, err := s.db.ExecContext(ctx, `INSERT INTO goals (exercise_type, daily, weekly, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(exercise_type) DO UPDATE SET
			daily = excluded.daily, weekly = excluded.weekly, updated_at = excluded.updated_at`,
		g.ExerciseType, g.Daily, g.Weekly, formatTime(g.UpdatedAt),
	)
	if err != nil {
		return model.Goal{}, model.IOError("saving goal", err)
	}
	return g, nil
}

// GetGoal returns the goal for an exercise type, or a NotFoundError.
func (s *Store) GetGoal(ctx context.Context, exerciseType string) (model.Goal, error) {
	var g model.Goal
	var updatedAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT exercise_type, daily, weekly, updated_at FROM goals WHERE exercise_type = ?", exerciseType,
	).Scan(&g.ExerciseType, &g.Daily, &g.Weekly, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, model.NotFoundf("no goal set for %q", exerciseType)
	}
	if err != nil {
		return model.Goal{}, model.IOError("reading goal", err)
	}
	if g.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Goal{}, model.IOError("reading goal", err)
	}
	return g, nil
}

// ListGoals returns every goal ordered by exercise type.
func (s *Store) ListGoals(ctx context.Context) ([]model.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT exercise_type, daily, weekly, updated_at FROM goals ORDER BY exercise_type")
	if err != nil {
		return nil, model.IOError("listing goals", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		var updatedAt string
		if err := rows.Scan(&g.ExerciseType, &g.Daily, &g.Weekly, &updatedAt); err != nil {
			return nil, model.IOError("reading goal", err)
		}
		if g.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, model.IOError("reading goal", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, model.IOError("listing goals", err)
	}
	return goals, nil
}

// inTx runs fn in a transaction. Nothing is kept unless fn and the commit succeed.
func (s *Store) inTx(ctx context.Context, op string, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.IOError(op, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return model.IOError(op, err)
	}
	if err := tx.Commit(); err != nil {
		return model.IOError(op, err)
	}
	return nil
}

// ClearAll removes every record and goal atomically.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.inTx(ctx, "clearing data", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM goals")
		return err
	})
}

// ClearGoals removes every goal and leaves records intact.
func (s *Store) ClearGoals(ctx context.Context) (int64, error) {
	var n int64
	err := s.inTx(ctx, "clearing goals", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM goals")
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return n, err
}

// ClearRecords removes records matching f and returns how many were deleted.
func (s *Store) ClearRecords(ctx context.Context, f model.Filter) (int64, error) {
	where, args := whereClause(f)
	var n int64
	err := s.inTx(ctx, "clearing records", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM records"+where, args...)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return n, err
}

// Counts returns the number of stored records and goals.
func (s *Store) Counts(ctx context.Context) (records, goals int, err error) {
	err = s.db.QueryRowContext(ctx,
		"SELECT (SELECT COUNT(*) FROM records), (SELECT COUNT(*) FROM goals)",
	).Scan(&records, &goals)
	if err != nil {
		return 0, 0, model.IOError("counting rows", err)
	}
	return records, goals, nil
}
