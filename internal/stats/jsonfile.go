package stats

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"folio/internal/jsonutil"
)

// JSONFileStore reads counts from a single JSON object on disk, the same
// shape a browser keeps under its "portfolioStats" storage entry:
//
//	{"project_1_views": 12, "project_2_views": 3}
//
// Views re-reads the file on every call. Renders go through Snapshot so a
// gallery of N cards reads the file once.
type JSONFileStore struct {
	path string
}

// NewJSONFileStore creates a read-only store backed by path.
func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

// Views implements Store. A missing file counts as an empty object.
func (s *JSONFileStore) Views(ctx context.Context, projectID int) (int, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return 0, err
	}
	return snap.Views(ctx, projectID)
}

// Snapshot implements Snapshotter: the file is read and decoded once and the
// returned Store answers from memory.
func (s *JSONFileStore) Snapshot(ctx context.Context) (Store, error) {
	return s.read(ctx)
}

func (s *JSONFileStore) read(ctx context.Context) (blobStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return blobStore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats: read %s: %w", s.path, err)
	}
	blob, err := jsonutil.UnmarshalObject(data, "stats: decode "+s.path)
	if err != nil {
		return nil, err
	}
	return blobStore(blob), nil
}

// blobStore answers lookups from a decoded stats object.
type blobStore map[string]interface{}

func (b blobStore) Views(_ context.Context, projectID int) (int, error) {
	key := ViewsKey(projectID)
	n := jsonutil.GetCount(b, key)
	if raw, ok := b[key]; ok && n == 0 && jsonutil.ToString(raw) != "0" {
		log.Printf("stats: ignoring malformed value %q for %s", jsonutil.ToString(raw), key)
	}
	return n, nil
}
