package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS view_stats (
	key   TEXT PRIMARY KEY,
	views INTEGER NOT NULL DEFAULT 0 CHECK (views >= 0)
)`

// SQLiteStore keeps view counts in a SQLite table keyed by ViewsKey.
// It is both a Store and a Tracker.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	tracer oteltrace.Tracer
}

// OpenSQLite opens (creating if needed) the stats database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("stats: create dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("stats: open database: %w", err)
	}
	// A single connection keeps increments serialized.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("stats: create schema: %w", err)
	}
	return &SQLiteStore{
		db:     db,
		path:   path,
		tracer: otel.Tracer("folio/stats"),
	}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Views implements Store.
func (s *SQLiteStore) Views(ctx context.Context, projectID int) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT views FROM view_stats WHERE key = ?`, ViewsKey(projectID)).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stats: read %s: %w", ViewsKey(projectID), err)
	}
	return n, nil
}

// TrackProjectView implements Tracker by incrementing the project's count.
func (s *SQLiteStore) TrackProjectView(ctx context.Context, projectID int) error {
	ctx, span := s.tracer.Start(ctx, "stats.TrackProjectView",
		oteltrace.WithAttributes(attribute.Int("folio.project_id", projectID)))
	defer span.End()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO view_stats (key, views) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET views = views + 1`, ViewsKey(projectID))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("stats: track %s: %w", ViewsKey(projectID), err)
	}
	return nil
}

// SetViews overwrites a project's count. Used for imports and tests.
func (s *SQLiteStore) SetViews(ctx context.Context, projectID, views int) error {
	if views < 0 {
		views = 0
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO view_stats (key, views) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET views = excluded.views`, ViewsKey(projectID), views)
	if err != nil {
		return fmt.Errorf("stats: set %s: %w", ViewsKey(projectID), err)
	}
	return nil
}
