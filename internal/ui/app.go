package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/project"
	"folio/internal/stats"
	"folio/internal/watcher"
)

// ProjectLoader fetches the project list from its fixed location.
type ProjectLoader interface {
	Load(ctx context.Context) ([]project.Project, error)
}

// ImageProber reports whether an image URL can be fetched.
type ImageProber interface {
	Probe(ctx context.Context, url string) error
}

// LoadListener receives the ProjectsLoadedMsg broadcast.
type LoadListener interface {
	ProjectsLoaded(projects []project.Project)
}

// LoadListenerFunc adapts a function to LoadListener.
type LoadListenerFunc func(projects []project.Project)

// ProjectsLoaded implements LoadListener.
func (f LoadListenerFunc) ProjectsLoaded(projects []project.Project) { f(projects) }

// Deps are the collaborators the gallery runs against. Nil fields disable
// the corresponding feature: no Tracker means opens are not counted, no
// Prober means images are never checked, no Watcher means no live reload.
type Deps struct {
	Loader    ProjectLoader
	Stats     stats.Store
	Tracker   stats.Tracker
	Clipboard func(text string) error
	Prober    ImageProber
	Watcher   *watcher.Watcher
	Listeners []LoadListener

	RevealInterval time.Duration
	FetchTimeout   time.Duration
}

// AppModel is the root model: the gallery plus the modal laid over it.
type AppModel struct {
	Mode          AppMode
	Gallery       *GalleryView
	KeyHandler    *KeyHandler
	Deps          Deps
	Status        string
	StatusIsError bool

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(deps Deps) *AppModel {
	g := NewGalleryView(deps.Stats)
	if deps.RevealInterval > 0 {
		g.RevealInterval = deps.RevealInterval
	}
	reg := NewKeybindRegistry()
	quit := func() tea.Msg { return QuitMsg{} }
	reg.BindWithDesc("q", quit, "Quit")
	reg.BindWithDesc("ctrl+c", quit, "Quit")
	reg.BindWithDesc("SPC q", quit, "Quit")
	reg.BindWithDesc("SPC r", func() tea.Msg { return ReloadMsg{} }, "Reload projects")
	return &AppModel{
		Mode:       ModeGallery,
		Gallery:    g,
		KeyHandler: NewKeyHandler(reg),
		Deps:       deps,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		a.Gallery.SetLoading(true),
		loadProjectsCmd(a.Deps.Loader, a.Deps.FetchTimeout),
		watchFileCmd(a.Deps.Watcher),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Gallery.SetSize(msg.Width, msg.Height)
		return a, nil
	case projectsFetchedMsg:
		return a, a.handleProjectsFetched(msg)
	case ProjectsLoadedMsg:
		for _, l := range a.Deps.Listeners {
			l.ProjectsLoaded(msg.Projects)
		}
		return a, nil
	case imagesProbedMsg:
		a.Gallery.ApplyImageFailures(msg)
		return a, nil
	case ReloadMsg:
		return a, a.reload()
	case projectsFileChangedMsg:
		log.Printf("gallery: project list changed, reloading")
		return a, tea.Batch(a.reload(), watchFileCmd(a.Deps.Watcher))
	case OpenProjectMsg:
		return a, a.openModal(msg.ID)
	case DismissModalMsg:
		a.closeModal(msg.Trigger)
		return a, nil
	case CopyLinkMsg:
		return a, copyLinkCmd(a.Deps.Clipboard, msg.URL)
	case statusMsg:
		a.Status = msg.Text
		a.StatusIsError = msg.IsError
		return a, nil
	case viewTrackedMsg:
		return a, nil
	case QuitMsg:
		a.teardown()
		return a, tea.Quit
	case tea.KeyMsg:
		a.Status, a.StatusIsError = "", false
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if a.Mode == ModeModal {
			if a.Gallery.Modal == nil {
				return a, nil
			}
			_, cmd := a.Gallery.Modal.Update(msg)
			return a, cmd
		}
	case tea.MouseMsg:
		if a.Mode == ModeModal {
			return a, a.handleModalMouse(msg)
		}
	case spinner.TickMsg, revealMsg:
	default:
		return a, nil
	}

	_, cmd := a.Gallery.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleProjectsFetched(msg projectsFetchedMsg) tea.Cmd {
	a.Gallery.SetLoading(false)
	if msg.Err != nil {
		// Nothing loaded, so nothing is broadcast or probed.
		a.Gallery.Clear()
		a.closeModalIfRemoved()
		return nil
	}
	cmd := a.Gallery.SetProjects(context.Background(), msg.Projects)
	a.closeModalIfRemoved()
	var probe tea.Cmd
	if a.Deps.Prober != nil {
		probe = probeImagesCmd(a.Deps.Prober, a.Gallery.Generation(), a.Gallery.ProbeTargets(), a.Deps.FetchTimeout)
	}
	return tea.Batch(cmd, probe)
}

// closeModalIfRemoved keeps the open modal only if its project survived the reload.
func (a *AppModel) closeModalIfRemoved() {
	if a.Mode != ModeModal || a.Gallery.Modal == nil {
		return
	}
	if _, ok := a.Gallery.CardByID(a.Gallery.Modal.Project.ID); !ok {
		a.closeModal(DismissCloseButton)
	}
}

func (a *appModelAdapter) reload() tea.Cmd {
	return tea.Batch(
		a.Gallery.SetLoading(true),
		loadProjectsCmd(a.Deps.Loader, a.Deps.FetchTimeout),
	)
}

// openModal shows the detail overlay for project id. The view is tracked
// even without a modal target; only the overlay is skipped, with a log line.
func (a *AppModel) openModal(id int) tea.Cmd {
	if a.Gallery == nil {
		log.Printf("gallery: modal not found, cannot open project %d", id)
		return nil
	}
	c, ok := a.Gallery.CardByID(id)
	if !ok {
		log.Printf("gallery: no card for project %d", id)
		return nil
	}
	cmd := trackViewCmd(a.Deps.Tracker, id)
	if a.Gallery.Modal == nil {
		log.Printf("gallery: modal not found, cannot open project %d", id)
		return cmd
	}

	m := a.Gallery.Modal
	m.SetContent(c.Project, c.Image)
	m.Show()
	a.Mode = ModeModal
	a.Gallery.LockScroll()
	if a.KeyHandler != nil {
		a.KeyHandler.Registry.BindWithDescForMode(DismissKey, func() tea.Msg {
			return DismissModalMsg{Trigger: DismissEscape}
		}, "Close", []AppMode{ModeModal})
	}
	return cmd
}

// closeModal hides the overlay, restores scrolling and drops the Escape
// binding. Closing an already closed modal does nothing.
func (a *AppModel) closeModal(trigger DismissTrigger) {
	if a.Mode != ModeModal {
		return
	}
	if a.Gallery != nil {
		if a.Gallery.Modal != nil {
			a.Gallery.Modal.Hide()
		}
		a.Gallery.UnlockScroll()
	}
	a.Mode = ModeGallery
	if a.KeyHandler != nil {
		a.KeyHandler.Registry.Unbind(DismissKey)
	}
	log.Printf("gallery: modal closed by %s", trigger)
}

func (a *AppModel) handleModalMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	trigger, ok := OverlayClick(a.Gallery.Modal, msg.X, msg.Y)
	if !ok {
		return nil
	}
	return func() tea.Msg { return DismissModalMsg{Trigger: trigger} }
}

// teardown cancels pending reveals and stops the file watcher.
func (a *AppModel) teardown() {
	if a.Gallery != nil {
		if n := a.Gallery.CancelReveals(); n > 0 {
			log.Printf("gallery: cancelled %d pending reveals", n)
		}
	}
	if a.Deps.Watcher != nil {
		a.Deps.Watcher.Stop()
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var base string
	if a.Mode == ModeModal && a.Gallery.Modal != nil && a.Gallery.Modal.IsOpen() {
		base = RenderOverlay(a.width, a.height, a.Gallery.Modal.View())
	} else {
		base = a.Gallery.View() + "\n" + a.footer()
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		if help := RenderKeybindHelp(a.KeyHandler, a.Mode); help != "" {
			base = overlayBottom(base, help, a.height)
		}
	}
	return base
}

func (a *AppModel) footer() string {
	if a.Status != "" {
		if a.StatusIsError {
			return Styles.ModalClose.Render(a.Status)
		}
		return Styles.Status.Render(a.Status)
	}
	if a.KeyHandler == nil {
		return ""
	}
	nav := []key.Binding{
		key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	}
	return RenderFooterHelp(NewKeyMap(a.KeyHandler.Registry, a.Mode, nav...), a.width)
}

// overlayBottom replaces the last lines of base with box so the screen
// keeps its height and click coordinates stay put.
func overlayBottom(base, box string, height int) string {
	lines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	if height <= 0 {
		height = len(lines)
	}
	keep := height - len(boxLines)
	if keep < 0 {
		keep = 0
	}
	if keep > len(lines) {
		keep = len(lines)
	}
	return strings.Join(append(lines[:keep:keep], boxLines...), "\n")
}
