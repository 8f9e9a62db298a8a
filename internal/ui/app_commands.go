package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"folio/internal/project"
	"folio/internal/stats"
	"folio/internal/watcher"
)

const (
	trackTimeout = 5 * time.Second
	// probeConcurrency bounds in-flight HEAD requests.
	probeConcurrency = 8
)

// loadProjectsCmd fetches the project list. A failure is logged and reported
// as an empty list; there is no retry.
func loadProjectsCmd(loader ProjectLoader, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return projectsFetchedMsg{Projects: []project.Project{}}
		}
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		projects, err := loader.Load(ctx)
		if err != nil {
			log.Printf("gallery: error loading projects: %v", err)
			return projectsFetchedMsg{Projects: []project.Project{}, Err: err}
		}
		return projectsFetchedMsg{Projects: projects}
	}
}

// trackViewCmd notifies the tracker that a project's modal was opened.
func trackViewCmd(tracker stats.Tracker, id int) tea.Cmd {
	if tracker == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
		defer cancel()
		err := tracker.TrackProjectView(ctx, id)
		if err != nil {
			log.Printf("gallery: track view for project %d: %v", id, err)
		}
		return viewTrackedMsg{ID: id, Err: err}
	}
}

// copyLinkCmd writes url to the clipboard and reports the outcome as status.
func copyLinkCmd(copyText func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if copyText == nil {
			return statusMsg{Text: "Clipboard unavailable", IsError: true}
		}
		if err := copyText(url); err != nil {
			log.Printf("gallery: copy %s: %v", url, err)
			return statusMsg{Text: "Copy failed: " + err.Error(), IsError: true}
		}
		return statusMsg{Text: "Copied " + url}
	}
}

// probeTarget is one card image to check.
type probeTarget struct {
	ID    int
	Image string
}

// probeImagesCmd HEAD-probes card images concurrently and reports the ids
// whose image could not be fetched. Individual failures never abort the batch.
func probeImagesCmd(prober ImageProber, group uint64, targets []probeTarget, timeout time.Duration) tea.Cmd {
	if prober == nil || len(targets) == 0 {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		failed := make([]bool, len(targets))

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(probeConcurrency)
		for i, t := range targets {
			g.Go(func() error {
				if err := prober.Probe(ctx, t.Image); err != nil {
					log.Printf("gallery: image for project %d unavailable: %v", t.ID, err)
					failed[i] = true
				}
				return nil
			})
		}
		_ = g.Wait()

		var ids []int
		for i, f := range failed {
			if f {
				ids = append(ids, targets[i].ID)
			}
		}
		return imagesProbedMsg{Group: group, Failed: ids}
	}
}

// watchFileCmd blocks until the watched project list changes.
// Re-issue it after each projectsFileChangedMsg to keep watching.
func watchFileCmd(w *watcher.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		<-w.Changed()
		return projectsFileChangedMsg{}
	}
}
