package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/project"
	"folio/internal/stats"
)

const (
	// galleryHeaderHeight is title, hint and a blank line above the grid.
	galleryHeaderHeight = 3
	// footerHeight is the status/help line below the grid.
	footerHeight = 1

	defaultGalleryWidth  = 80
	defaultGalleryHeight = 24

	// DefaultRevealInterval is the stagger between consecutive card reveals.
	DefaultRevealInterval = 100 * time.Millisecond

	wheelStep = 3
)

// GalleryView is the card grid. It owns the cards, their reveal schedule
// and the page scroll, and holds the single modal target.
type GalleryView struct {
	Projects []project.Project
	Cards    []*Card
	Modal    *ProjectModal
	Selected int

	Stats          stats.Store
	RevealInterval time.Duration

	stagger      *Stagger
	generation   uint64
	viewport     viewport.Model
	spinner      spinner.Model
	loading      bool
	scrollLocked bool
	width        int
	height       int
	layout       GridLayout
}

// Ensure GalleryView implements View.
var _ View = (*GalleryView)(nil)

// NewGalleryView creates an empty gallery reading view counts from store.
// store may be nil, in which case every count is 0.
func NewGalleryView(store stats.Store) *GalleryView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	g := &GalleryView{
		Modal:          NewProjectModal(),
		Stats:          store,
		RevealInterval: DefaultRevealInterval,
		stagger:        NewStagger(),
		viewport:       viewport.New(defaultGalleryWidth, defaultGalleryHeight-galleryHeaderHeight-footerHeight),
		spinner:        s,
	}
	g.SetSize(defaultGalleryWidth, defaultGalleryHeight)
	return g
}

// Init implements View.
func (g *GalleryView) Init() tea.Cmd {
	return g.spinner.Tick
}

// SetLoading sets the loading state and returns a command to start the spinner.
// The spinner is only started on the transition into loading.
func (g *GalleryView) SetLoading(loading bool) tea.Cmd {
	was := g.loading
	g.loading = loading
	if loading && !was {
		return g.spinner.Tick
	}
	return nil
}

// Loading reports whether a load is in progress.
func (g *GalleryView) Loading() bool {
	return g.loading
}

// SetSize resizes the gallery to the full terminal area.
func (g *GalleryView) SetSize(width, height int) {
	g.width, g.height = width, height
	g.layout = NewGridLayout(width)
	vh := height - galleryHeaderHeight - footerHeight
	if vh < 1 {
		vh = 1
	}
	g.viewport.Width = width
	g.viewport.Height = vh
	if g.Modal != nil {
		g.Modal.SetSize(width, height)
	}
	g.refresh()
}

// Layout returns the current grid layout.
func (g *GalleryView) Layout() GridLayout {
	return g.layout
}

// SetProjects renders projects: pending reveals are cancelled, the cards
// are rebuilt in list order with their view counts, and one reveal per card
// is scheduled at index × RevealInterval. The returned command batches the
// reveals with the ProjectsLoadedMsg broadcast, which does not wait for them.
func (g *GalleryView) SetProjects(ctx context.Context, projects []project.Project) tea.Cmd {
	cmds := g.render(ctx, projects)
	loaded := append([]project.Project(nil), g.Projects...)
	cmds = append(cmds, func() tea.Msg { return ProjectsLoadedMsg{Projects: loaded} })
	return tea.Batch(cmds...)
}

// Clear drops every card and pending reveal. Nothing is broadcast.
func (g *GalleryView) Clear() {
	g.render(context.Background(), nil)
}

func (g *GalleryView) render(ctx context.Context, projects []project.Project) []tea.Cmd {
	g.stagger.Cancel()
	g.generation++
	g.Projects = make([]project.Project, 0, len(projects))
	g.Cards = make([]*Card, 0, len(projects))

	store := g.viewSource(ctx)
	ids := make([]int, 0, len(projects))
	for i, p := range projects {
		p = p.Sanitize()
		c := NewCard(p, i)
		c.Views = lookupViews(ctx, store, p.ID)
		g.Projects = append(g.Projects, p)
		g.Cards = append(g.Cards, c)
		ids = append(ids, p.ID)
	}
	if g.Selected >= len(g.Cards) {
		g.Selected = len(g.Cards) - 1
	}
	if g.Selected < 0 {
		g.Selected = 0
	}

	cmds := g.stagger.Schedule(ids, g.RevealInterval)
	g.refresh()
	return cmds
}

// viewSource returns the store one render reads counts from. Stores that
// support it are snapshotted so every card shares a single read.
func (g *GalleryView) viewSource(ctx context.Context) stats.Store {
	snap, ok := g.Stats.(stats.Snapshotter)
	if !ok {
		return g.Stats
	}
	s, err := snap.Snapshot(ctx)
	if err != nil {
		log.Printf("gallery: read view stats: %v", err)
		return nil
	}
	return s
}

func lookupViews(ctx context.Context, store stats.Store, id int) int {
	if store == nil {
		return 0
	}
	n, err := store.Views(ctx, id)
	if err != nil {
		log.Printf("gallery: read views for project %d: %v", id, err)
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

// Generation identifies the current render. It changes on every SetProjects.
func (g *GalleryView) Generation() uint64 {
	return g.generation
}

// Reveal marks the card for msg visible if msg belongs to the current render.
// Stale reveals from a cancelled group are ignored.
func (g *GalleryView) Reveal(msg revealMsg) bool {
	if !g.stagger.Accept(msg) {
		return false
	}
	for _, c := range g.Cards {
		if c.Project.ID == msg.CardID {
			c.Visible = true
		}
	}
	g.refresh()
	return true
}

// CancelReveals drops every pending reveal. Cards already shown stay shown.
func (g *GalleryView) CancelReveals() int {
	return g.stagger.Cancel()
}

// PendingReveals returns the ids of cards not yet revealed, in schedule order.
func (g *GalleryView) PendingReveals() []int {
	return g.stagger.Pending()
}

// ProbeTargets lists the card images worth probing for the current render.
func (g *GalleryView) ProbeTargets() []probeTarget {
	var targets []probeTarget
	for _, c := range g.Cards {
		if project.Probeable(c.Image) && c.Image != c.Project.FallbackImage() {
			targets = append(targets, probeTarget{ID: c.Project.ID, Image: c.Image})
		}
	}
	return targets
}

// ApplyImageFailures switches the listed cards (and the modal, if it shows
// one of them) to the fallback image. Results for an older render are dropped.
func (g *GalleryView) ApplyImageFailures(msg imagesProbedMsg) int {
	if msg.Group != g.generation {
		return 0
	}
	failed := make(map[int]bool, len(msg.Failed))
	for _, id := range msg.Failed {
		failed[id] = true
	}
	n := 0
	for _, c := range g.Cards {
		if failed[c.Project.ID] {
			c.UseFallbackImage()
			n++
		}
	}
	if g.Modal != nil && failed[g.Modal.Project.ID] && g.Modal.Project.Title != "" {
		g.Modal.Image = g.Modal.Project.FallbackImage()
	}
	if n > 0 {
		g.refresh()
	}
	return n
}

// CardByID returns the card rendered for project id.
func (g *GalleryView) CardByID(id int) (*Card, bool) {
	for _, c := range g.Cards {
		if c.Project.ID == id {
			return c, true
		}
	}
	return nil, false
}

// SelectedCard returns the card under the keyboard cursor.
func (g *GalleryView) SelectedCard() (*Card, bool) {
	if g.Selected < 0 || g.Selected >= len(g.Cards) {
		return nil, false
	}
	return g.Cards[g.Selected], true
}

// LockScroll freezes the page scroll while the modal is open.
func (g *GalleryView) LockScroll() { g.scrollLocked = true }

// UnlockScroll restores page scrolling at the offset it was locked at.
func (g *GalleryView) UnlockScroll() { g.scrollLocked = false }

// ScrollLocked reports whether page scroll is suppressed.
func (g *GalleryView) ScrollLocked() bool { return g.scrollLocked }

// ScrollOffset returns the first grid line shown.
func (g *GalleryView) ScrollOffset() int { return g.viewport.YOffset }

// Scroll moves the page by delta lines unless scroll is locked.
func (g *GalleryView) Scroll(delta int) {
	if g.scrollLocked || delta == 0 {
		return
	}
	g.viewport.SetYOffset(g.viewport.YOffset + delta)
}

// HitTest maps a screen cell to the card and card zone under it.
// Hidden cards and cells outside the grid miss.
func (g *GalleryView) HitTest(x, y int) (int, Zone, bool) {
	if y < galleryHeaderHeight || y >= galleryHeaderHeight+g.viewport.Height {
		return 0, ZoneNone, false
	}
	gy := y - galleryHeaderHeight + g.viewport.YOffset
	idx, ok := g.layout.IndexAt(x, gy, len(g.Cards))
	if !ok {
		return 0, ZoneNone, false
	}
	c := g.Cards[idx]
	if !c.Visible {
		return 0, ZoneNone, false
	}
	r := g.layout.CardRect(idx)
	return idx, c.ZoneAt(x-r.X, gy-r.Y), true
}

// Update implements View.
func (g *GalleryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.SetSize(msg.Width, msg.Height)
		return g, nil
	case spinner.TickMsg:
		if g.loading {
			var cmd tea.Cmd
			g.spinner, cmd = g.spinner.Update(msg)
			return g, cmd
		}
		return g, nil
	case revealMsg:
		g.Reveal(msg)
		return g, nil
	case tea.MouseMsg:
		return g, g.handleMouse(msg)
	case tea.KeyMsg:
		return g, g.handleKey(msg)
	}
	return g, nil
}

func (g *GalleryView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		g.moveSelection(0, -1)
	case "down", "j":
		g.moveSelection(0, 1)
	case "left", "h":
		g.moveSelection(-1, 0)
	case "right", "l":
		g.moveSelection(1, 0)
	case "pgup":
		g.Scroll(-g.viewport.Height)
	case "pgdown":
		g.Scroll(g.viewport.Height)
	case "enter":
		if c, ok := g.SelectedCard(); ok && c.Visible {
			id := c.Project.ID
			return func() tea.Msg { return OpenProjectMsg{ID: id} }
		}
	}
	return nil
}

func (g *GalleryView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		g.Scroll(-wheelStep)
		return nil
	case tea.MouseButtonWheelDown:
		g.Scroll(wheelStep)
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	idx, zone, ok := g.HitTest(msg.X, msg.Y)
	if !ok {
		return nil
	}
	g.Selected = idx
	g.refresh()
	c := g.Cards[idx]
	switch zone {
	case ZoneCode, ZoneDemo:
		url := c.LinkURL(zone)
		return func() tea.Msg { return CopyLinkMsg{URL: url} }
	case ZoneLinks:
		// The links row belongs to the links, not the card.
		return nil
	default:
		id := c.Project.ID
		return func() tea.Msg { return OpenProjectMsg{ID: id} }
	}
}

func (g *GalleryView) moveSelection(dx, dy int) {
	if len(g.Cards) == 0 {
		return
	}
	g.Selected = g.layout.Move(g.Selected, dx, dy, len(g.Cards))
	g.refresh()
	g.ensureSelectedVisible()
}

func (g *GalleryView) ensureSelectedVisible() {
	if g.scrollLocked {
		return
	}
	r := g.layout.CardRect(g.Selected)
	top := g.viewport.YOffset
	if r.Y < top {
		g.viewport.SetYOffset(r.Y)
	} else if r.Y+r.H > top+g.viewport.Height {
		g.viewport.SetYOffset(r.Y + r.H - g.viewport.Height)
	}
}

// refresh re-renders the grid into the viewport, keeping the scroll offset.
func (g *GalleryView) refresh() {
	offset := g.viewport.YOffset
	g.viewport.SetContent(g.renderGrid())
	g.viewport.SetYOffset(offset)
}

func (g *GalleryView) renderGrid() string {
	if len(g.Cards) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", g.layout.ColGap)
	rows := make([]string, 0, g.layout.Rows(len(g.Cards)))
	for start := 0; start < len(g.Cards); start += g.layout.Columns {
		end := start + g.layout.Columns
		if end > len(g.Cards) {
			end = len(g.Cards)
		}
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, gap)
			}
			cells = append(cells, g.Cards[i].View(i == g.Selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// View implements View.
func (g *GalleryView) View() string {
	var b strings.Builder
	title := fmt.Sprintf("Projects (%d)", len(g.Cards))
	if g.loading {
		title += " " + g.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n")
	b.WriteString(Styles.Hint.Render("Click or Enter to open · Press [SPC] for commands") + "\n\n")
	if len(g.Cards) == 0 {
		if g.loading {
			b.WriteString(Styles.Muted.Render("Loading projects…"))
		} else {
			b.WriteString(Styles.Empty.Render("No projects to show"))
		}
		return padLines(b.String(), g.height-footerHeight)
	}
	b.WriteString(g.viewport.View())
	return b.String()
}

// padLines pads s with blank lines up to n lines.
func padLines(s string, n int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= n {
		return s
	}
	return s + strings.Repeat("\n", n-lines)
}
