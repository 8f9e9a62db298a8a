package stats

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewsKey(t *testing.T) {
	assert.Equal(t, "project_42_views", ViewsKey(42))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(map[int]int{1: 5, 2: -1})

	n, err := m.Views(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, _ = m.Views(ctx, 2)
	assert.Equal(t, 0, n, "negative seeds are dropped")

	n, _ = m.Views(ctx, 99)
	assert.Equal(t, 0, n, "missing entry is 0")

	require.NoError(t, m.TrackProjectView(ctx, 99))
	require.NoError(t, m.TrackProjectView(ctx, 99))
	n, _ = m.Views(ctx, 99)
	assert.Equal(t, 2, n)
}

func TestJSONFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portfolioStats.json")
	s := NewJSONFileStore(path)

	n, err := s.Views(ctx, 1)
	require.NoError(t, err, "missing file is an empty store")
	assert.Equal(t, 0, n)

	require.NoError(t, os.WriteFile(path, []byte(`{"project_1_views": 1234, "project_2_views": -4, "project_3_views": "7"}`), 0644))

	n, err = s.Views(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1234, n)

	n, _ = s.Views(ctx, 2)
	assert.Equal(t, 0, n)

	n, _ = s.Views(ctx, 3)
	assert.Equal(t, 7, n)

	n, _ = s.Views(ctx, 4)
	assert.Equal(t, 0, n)
}

func TestJSONFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	_, err := NewJSONFileStore(path).Views(context.Background(), 1)
	require.Error(t, err)
}

func TestJSONFileStore_SnapshotReadsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"project_1_views": 12, "project_2_views": "x"}`), 0644))

	var s Snapshotter = NewJSONFileStore(path)
	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)

	// Later writes are not seen by the snapshot, only by direct lookups.
	require.NoError(t, os.WriteFile(path, []byte(`{"project_1_views": 99}`), 0644))
	n, err := snap.Views(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	n, _ = snap.Views(ctx, 2)
	assert.Equal(t, 0, n, "malformed value reads as 0")
	n, _ = snap.Views(ctx, 3)
	assert.Equal(t, 0, n)

	n, err = NewJSONFileStore(path).Views(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 99, n)
}

func TestJSONFileStore_SnapshotErrors(t *testing.T) {
	dir := t.TempDir()
	snap, err := NewJSONFileStore(filepath.Join(dir, "missing.json")).Snapshot(context.Background())
	require.NoError(t, err, "missing file is an empty object")
	n, _ := snap.Views(context.Background(), 1)
	assert.Equal(t, 0, n)

	path := filepath.Join(dir, "stats.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	_, err = NewJSONFileStore(path).Snapshot(context.Background())
	require.Error(t, err)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "stats.db")
	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Views(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, s.TrackProjectView(ctx, 1))
	require.NoError(t, s.TrackProjectView(ctx, 1))
	require.NoError(t, s.TrackProjectView(ctx, 2))

	n, _ = s.Views(ctx, 1)
	assert.Equal(t, 2, n)
	n, _ = s.Views(ctx, 2)
	assert.Equal(t, 1, n)

	require.NoError(t, s.SetViews(ctx, 3, 1500))
	n, _ = s.Views(ctx, 3)
	assert.Equal(t, 1500, n)

	require.NoError(t, s.SetViews(ctx, 3, -10))
	n, _ = s.Views(ctx, 3)
	assert.Equal(t, 0, n)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stats.db")
	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.TrackProjectView(ctx, 7))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.Views(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, tracker, closeFn, err := Open(ctx, FormatMemory, "")
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.NotNil(t, tracker)
	require.NoError(t, closeFn())

	store, tracker, closeFn, err = Open(ctx, FormatJSON, filepath.Join(dir, "s.json"))
	require.NoError(t, err)
	assert.IsType(t, &JSONFileStore{}, store)
	assert.Nil(t, tracker)
	require.NoError(t, closeFn())

	store, tracker, closeFn, err = Open(ctx, FormatSQLite, filepath.Join(dir, "s.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	assert.NotNil(t, tracker)
	require.NoError(t, closeFn())

	_, _, closeFn, err = Open(ctx, Format("redis"), "")
	require.ErrorIs(t, err, ErrUnknownFormat)
	require.NotNil(t, closeFn)
}

func TestResolvePath(t *testing.T) {
	p, err := ResolvePath("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", p)

	t.Setenv("HOME", "/home/tester")
	p, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", DefaultDir, DefaultFile), p)
}
