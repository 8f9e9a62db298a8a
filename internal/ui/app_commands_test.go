package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/project"
	"folio/internal/watcher"
)

func TestLoadProjectsCmd_NilLoader(t *testing.T) {
	msg := loadProjectsCmd(nil, time.Second)()
	fetched, ok := msg.(projectsFetchedMsg)
	require.True(t, ok)
	assert.NoError(t, fetched.Err)
	assert.Empty(t, fetched.Projects)
}

func TestLoadProjectsCmd_FileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projects":[{"id":1,"title":"One"}]}`), 0o644))

	msg := loadProjectsCmd(project.NewLoader(path), time.Second)()
	fetched := msg.(projectsFetchedMsg)
	require.NoError(t, fetched.Err)
	require.Len(t, fetched.Projects, 1)
	assert.Equal(t, "One", fetched.Projects[0].Title)
}

func TestTrackViewCmd(t *testing.T) {
	assert.Nil(t, trackViewCmd(nil, 1), "absent tracker issues no command")

	tracker := &recordingTracker{}
	msg := trackViewCmd(tracker, 5)()
	assert.Equal(t, viewTrackedMsg{ID: 5}, msg)
	assert.Equal(t, []int{5}, tracker.tracked())
}

func TestCopyLinkCmd_NoClipboard(t *testing.T) {
	msg := copyLinkCmd(nil, "https://example.com")()
	status, ok := msg.(statusMsg)
	require.True(t, ok)
	assert.True(t, status.IsError)
}

func TestProbeImagesCmd(t *testing.T) {
	assert.Nil(t, probeImagesCmd(nil, 1, []probeTarget{{ID: 1, Image: "x"}}, time.Second))

	prober := proberFunc(func(_ context.Context, url string) error {
		if url == "bad" {
			return errors.New("gone")
		}
		return nil
	})
	targets := []probeTarget{{ID: 1, Image: "ok"}, {ID: 2, Image: "bad"}, {ID: 3, Image: "bad"}}
	msg := probeImagesCmd(prober, 9, targets, time.Second)()
	probed, ok := msg.(imagesProbedMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(9), probed.Group)
	assert.Equal(t, []int{2, 3}, probed.Failed)
}

func TestWatchFileCmd(t *testing.T) {
	assert.Nil(t, watchFileCmd(nil))

	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projects":[]}`), 0o644))

	w, err := watcher.New(path, watcher.WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	done := make(chan any, 1)
	cmd := watchFileCmd(w)
	go func() { done <- cmd() }()

	require.NoError(t, os.WriteFile(path, []byte(`{"projects":[{"id":1}]}`), 0o644))
	select {
	case msg := <-done:
		assert.Equal(t, projectsFileChangedMsg{}, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}
