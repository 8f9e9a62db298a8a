package ui

import (
	"folio/internal/project"
)

// ProjectsLoadedMsg is broadcast once per render with the full project list.
// It is emitted as soon as cards are built, before staggered reveals finish.
type ProjectsLoadedMsg struct {
	Projects []project.Project
}

// projectsFetchedMsg carries the result of a load. Err is non-nil on failure,
// in which case Projects is empty.
type projectsFetchedMsg struct {
	Projects []project.Project
	Err      error
}

// ReloadMsg re-runs the project load (SPC r, or the list file changed).
type ReloadMsg struct{}

// OpenProjectMsg asks the app to open the modal for a project id.
type OpenProjectMsg struct {
	ID int
}

// DismissModalMsg closes the modal. Trigger records what closed it.
type DismissModalMsg struct {
	Trigger DismissTrigger
}

// CopyLinkMsg asks the app to copy a project link to the clipboard.
type CopyLinkMsg struct {
	URL string
}

// statusMsg replaces the footer status line.
type statusMsg struct {
	Text    string
	IsError bool
}

// viewTrackedMsg reports the outcome of a tracker call.
type viewTrackedMsg struct {
	ID  int
	Err error
}

// imagesProbedMsg lists card ids whose image failed to load.
// Group ties the probe to the render that started it.
type imagesProbedMsg struct {
	Group  uint64
	Failed []int
}

// projectsFileChangedMsg is sent by the watcher when the list file changes.
type projectsFileChangedMsg struct{}

// QuitMsg tears the gallery down and exits the program.
type QuitMsg struct{}
