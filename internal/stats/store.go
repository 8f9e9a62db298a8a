// Package stats reads per-project view counts from an ambient key-value store.
//
// Counts live under keys of the form "project_<id>_views". The gallery only
// reads them; writes belong to an optional Tracker collaborator.
package stats

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads view counts. A missing entry is a count of 0, not an error.
type Store interface {
	Views(ctx context.Context, projectID int) (int, error)
}

// Tracker records a project view. Implementations are optional collaborators;
// callers treat a nil Tracker as "not installed".
type Tracker interface {
	TrackProjectView(ctx context.Context, projectID int) error
}

// Snapshotter is implemented by stores whose lookups are expensive. A render
// takes one snapshot and reads every card's count from it.
type Snapshotter interface {
	Snapshot(ctx context.Context) (Store, error)
}

// Format selects a Store backend.
type Format string

const (
	FormatSQLite Format = "sqlite"
	FormatJSON   Format = "json"
	FormatMemory Format = "memory"
)

const (
	// DefaultDir is the directory under $HOME holding the default stats database.
	DefaultDir = ".folio"
	// DefaultFile is the default stats database filename.
	DefaultFile = "stats.db"
)

// ErrUnknownFormat is returned by Open for an unsupported backend name.
var ErrUnknownFormat = errors.New("unknown stats format")

// ViewsKey returns the storage key for a project's view count.
func ViewsKey(projectID int) string {
	return fmt.Sprintf("project_%d_views", projectID)
}

// ResolvePath returns path, or ~/.folio/stats.db when path is empty.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDir, DefaultFile), nil
}

// Open builds the Store for format. The returned Tracker is nil for
// read-only backends. close releases backend resources and is never nil.
func Open(ctx context.Context, format Format, path string) (Store, Tracker, func() error, error) {
	noop := func() error { return nil }
	switch format {
	case FormatMemory:
		m := NewMemoryStore(nil)
		return m, m, noop, nil
	case FormatJSON:
		return NewJSONFileStore(path), nil, noop, nil
	case FormatSQLite, "":
		resolved, err := ResolvePath(path)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("stats.Open: %w", err)
		}
		s, err := OpenSQLite(ctx, resolved)
		if err != nil {
			return nil, nil, noop, err
		}
		return s, s, s.Close, nil
	default:
		return nil, nil, noop, fmt.Errorf("stats.Open: %w: %q", ErrUnknownFormat, format)
	}
}
