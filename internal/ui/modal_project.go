package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/project"
	"folio/internal/ui/textutil"
)

const (
	modalCloseLabel = "[x]"
	modalMaxWidth   = 76
	modalMinWidth   = 30
	// modalChrome is border (2) plus horizontal padding (4).
	modalChrome      = 6
	techGridColumns  = 3
	techItemSubtitle = "Core technology"
	modalCodeLabel   = "View Code"
	modalDemoLabel   = "Live Demo"
)

// ProjectModal is the full-detail overlay for a single project.
// There is one modal per gallery; opening replaces its content.
type ProjectModal struct {
	Project project.Project
	Image   string
	open    bool

	termWidth  int
	termHeight int

	renderer      *glamour.TermRenderer
	rendererWidth int
}

// Ensure ProjectModal implements View.
var _ View = (*ProjectModal)(nil)

// NewProjectModal creates a closed, empty modal.
func NewProjectModal() *ProjectModal {
	return &ProjectModal{}
}

// SetContent replaces the modal's project and resolved image.
func (m *ProjectModal) SetContent(p project.Project, image string) {
	p = p.Sanitize()
	m.Project = p
	image = project.StripControl(image, false)
	if image == "" {
		image = p.ImageURL()
	}
	m.Image = image
}

// Show makes the modal visible.
func (m *ProjectModal) Show() { m.open = true }

// Hide makes the modal invisible. Content is kept until the next SetContent.
func (m *ProjectModal) Hide() { m.open = false }

// IsOpen reports whether the modal is visible.
func (m *ProjectModal) IsOpen() bool { return m.open }

// SetSize records the terminal size the modal is centered in.
func (m *ProjectModal) SetSize(width, height int) {
	m.termWidth, m.termHeight = width, height
}

// Init implements View.
func (m *ProjectModal) Init() tea.Cmd {
	return nil
}

// Update implements View. Escape is not handled here; the app registers it
// as a transient binding while the modal is open.
func (m *ProjectModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			if m.Project.HasCode() {
				url := m.Project.GithubURL
				return m, func() tea.Msg { return CopyLinkMsg{URL: url} }
			}
		case "d":
			if m.Project.HasDemo() {
				url := m.Project.LiveDemoURL
				return m, func() tea.Msg { return CopyLinkMsg{URL: url} }
			}
		}
	}
	return m, nil
}

// contentWidth is the usable text width inside the box.
func (m *ProjectModal) contentWidth() int {
	w := m.termWidth - 4
	if m.termWidth == 0 {
		w = modalMaxWidth
	}
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < modalMinWidth {
		w = modalMinWidth
	}
	return w - modalChrome
}

// View implements View.
func (m *ProjectModal) View() string {
	w := m.contentWidth()
	p := m.Project

	var b strings.Builder
	title := textutil.PadRightVisual(p.Title, w-len(modalCloseLabel))
	b.WriteString(Styles.ModalTitle.Render(title) + Styles.ModalClose.Render(modalCloseLabel) + "\n")
	b.WriteString(Styles.Muted.Render(textutil.Truncate("▣ "+m.Image, w)) + "\n")
	if p.Type != "" {
		b.WriteString(Styles.CardType.Render(textutil.Truncate(p.Type, w)) + "\n")
	}
	if desc := m.renderDescription(w); desc != "" {
		b.WriteString(desc + "\n")
	}
	b.WriteString("\n" + Styles.Section.Render("Technology Stack") + "\n")
	if grid := m.techGrid(w); grid != "" {
		b.WriteString(grid + "\n")
	} else {
		b.WriteString(Styles.Empty.Render("none listed") + "\n")
	}
	if links := m.links(w); links != "" {
		b.WriteString("\n" + links + "\n")
	}
	b.WriteString("\n" + Styles.Hint.Render(m.help()))

	return Styles.Modal.Width(w + 4).Render(b.String())
}

func (m *ProjectModal) help() string {
	parts := []string{}
	if m.Project.HasCode() {
		parts = append(parts, "c: copy code")
	}
	if m.Project.HasDemo() {
		parts = append(parts, "d: copy demo")
	}
	parts = append(parts, "esc: close")
	return strings.Join(parts, "  ")
}

// renderDescription renders the description as markdown, falling back to
// plain wrapped text if the renderer is unavailable.
func (m *ProjectModal) renderDescription(width int) string {
	desc := strings.TrimSpace(m.Project.Description)
	if desc == "" {
		return ""
	}
	if m.renderer == nil || m.rendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("notty"),
			glamour.WithWordWrap(width-4),
		)
		if err == nil {
			m.renderer, m.rendererWidth = r, width
		}
	}
	if m.renderer != nil {
		if out, err := m.renderer.Render(desc); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return strings.Join(textutil.Wrap(desc, width, 20), "\n")
}

// techGrid lays technologies out in rows of small boxes.
func (m *ProjectModal) techGrid(width int) string {
	techs := m.Project.Technologies
	if len(techs) == 0 {
		return ""
	}
	cols := width / (len(techItemSubtitle) + 4)
	if cols > techGridColumns {
		cols = techGridColumns
	}
	if cols < 1 {
		cols = 1
	}
	cellWidth := width/cols - 4
	var rows []string
	for i := 0; i < len(techs); i += cols {
		end := i + cols
		if end > len(techs) {
			end = len(techs)
		}
		cells := make([]string, 0, end-i)
		for _, tech := range techs[i:end] {
			body := Styles.CardTitle.Render(textutil.Truncate(tech, cellWidth)) + "\n" +
				Styles.Muted.Render(techItemSubtitle)
			cells = append(cells, Styles.TechItem.Width(cellWidth+2).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *ProjectModal) links(width int) string {
	var parts []string
	if m.Project.HasCode() {
		parts = append(parts, linkLine(modalCodeLabel, m.Project.GithubURL, width))
	}
	if m.Project.HasDemo() {
		parts = append(parts, linkLine(modalDemoLabel, m.Project.LiveDemoURL, width))
	}
	return strings.Join(parts, "\n")
}

func linkLine(label, url string, width int) string {
	url = textutil.Truncate(url, width-len(label)-1)
	return Styles.Link.Render(label) + " " + Styles.Muted.Render(url)
}

// Bounds returns the on-screen rect of the modal box, centered in the terminal.
func (m *ProjectModal) Bounds() Rect {
	box := m.View()
	return CenterRect(m.termWidth, m.termHeight, lipgloss.Width(box), lipgloss.Height(box))
}

// CloseButton returns the on-screen rect of the close control.
func (m *ProjectModal) CloseButton() Rect {
	b := m.Bounds()
	return Rect{
		X: b.X + b.W - 1 - 2 - len(modalCloseLabel),
		Y: b.Y + 1,
		W: len(modalCloseLabel),
		H: 1,
	}
}
