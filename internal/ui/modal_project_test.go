package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/project"
)

func openModalFor(p project.Project) *ProjectModal {
	m := NewProjectModal()
	m.SetSize(100, 40)
	m.SetContent(p, "")
	m.Show()
	return m
}

func TestProjectModal_ShowHide(t *testing.T) {
	m := NewProjectModal()
	assert.False(t, m.IsOpen())
	m.Show()
	assert.True(t, m.IsOpen())
	m.Hide()
	assert.False(t, m.IsOpen())
}

func TestProjectModal_Content(t *testing.T) {
	m := openModalFor(sampleProject())
	out := m.View()
	for _, want := range []string{
		"Weather Board",
		"Web App",
		"forecasts",
		"Technology Stack",
		"HTMX",
		techItemSubtitle,
		modalCodeLabel,
		modalDemoLabel,
		"https://images.example.com/weather.png",
		modalCloseLabel,
	} {
		assert.Contains(t, out, want)
	}
}

func TestProjectModal_PlaceholderLinksOmitted(t *testing.T) {
	p := sampleProject()
	p.GithubURL = "#"
	p.LiveDemoURL = ""
	out := openModalFor(p).View()
	assert.NotContains(t, out, modalCodeLabel)
	assert.NotContains(t, out, modalDemoLabel)
	assert.NotContains(t, out, "c: copy code")
}

func TestProjectModal_NoTechnologies(t *testing.T) {
	p := sampleProject()
	p.Technologies = nil
	out := openModalFor(p).View()
	assert.Contains(t, out, "none listed")
	assert.NotContains(t, out, techItemSubtitle)
}

func TestProjectModal_ImageFallback(t *testing.T) {
	p := sampleProject()
	p.Image = ""
	m := openModalFor(p)
	assert.Equal(t, project.FallbackImage(p.ID), m.Image)
}

func TestProjectModal_StripsTerminalEscapes(t *testing.T) {
	p := sampleProject()
	p.Title = "Evil\x1b]0;x\x07"
	p.Description = "clear \x1b[2J now"
	p.GithubURL = "https://github.com/e\x1b]52;c;aGk=\x07"
	m := NewProjectModal()
	m.SetSize(100, 40)
	m.SetContent(p, "https://img.example/\x1b[2Ja.png")
	m.Show()

	out := m.View()
	assert.NotContains(t, out, "\x1b]")
	assert.NotContains(t, out, "\x07")
	assert.NotContains(t, out, "\x1b[2J")
	assert.Equal(t, "https://img.example/[2Ja.png", m.Image)
}

func TestProjectModal_CopyKeys(t *testing.T) {
	m := openModalFor(sampleProject())

	_, cmd := m.Update(keyMsg("c"))
	require.NotNil(t, cmd)
	assert.Equal(t, CopyLinkMsg{URL: "https://github.com/example/weather"}, cmd())

	_, cmd = m.Update(keyMsg("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, CopyLinkMsg{URL: "https://weather.example.com"}, cmd())

	p := sampleProject()
	p.GithubURL = "#"
	m = openModalFor(p)
	_, cmd = m.Update(keyMsg("c"))
	assert.Nil(t, cmd, "no copy without a code link")
}

func TestProjectModal_EscNotHandledByModal(t *testing.T) {
	m := openModalFor(sampleProject())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.True(t, m.IsOpen(), "escape is routed through the app's transient binding")
}

func TestProjectModal_FitsNarrowTerminal(t *testing.T) {
	m := NewProjectModal()
	m.SetSize(40, 30)
	m.SetContent(sampleProject(), "")
	w := lipgloss.Width(m.View())
	assert.LessOrEqual(t, w, 40)
}

func TestProjectModal_CloseButtonGeometry(t *testing.T) {
	m := openModalFor(sampleProject())
	b := m.Bounds()
	cb := m.CloseButton()

	assert.True(t, b.Contains(cb.X, cb.Y))
	assert.True(t, b.Contains(cb.X+cb.W-1, cb.Y))

	screen := strings.Split(RenderOverlay(100, 40, m.View()), "\n")
	require.Greater(t, len(screen), cb.Y)
	row := screen[cb.Y]
	idx := strings.Index(row, modalCloseLabel)
	require.GreaterOrEqual(t, idx, 0, "close label not on row %d: %q", cb.Y, row)
	assert.Equal(t, cb.X, lipgloss.Width(row[:idx]))
}

func TestOverlayClick(t *testing.T) {
	m := openModalFor(sampleProject())
	b := m.Bounds()
	cb := m.CloseButton()

	trigger, ok := OverlayClick(m, cb.X+1, cb.Y)
	require.True(t, ok)
	assert.Equal(t, DismissCloseButton, trigger)

	trigger, ok = OverlayClick(m, 0, 0)
	require.True(t, ok)
	assert.Equal(t, DismissBackdrop, trigger)

	trigger, ok = OverlayClick(m, b.X+b.W, b.Y)
	require.True(t, ok)
	assert.Equal(t, DismissBackdrop, trigger)

	_, ok = OverlayClick(m, b.X+2, b.Y+b.H/2)
	assert.False(t, ok, "clicks inside the box do not dismiss")
}

func TestDismissTrigger_String(t *testing.T) {
	assert.Equal(t, "close-button", DismissCloseButton.String())
	assert.Equal(t, "backdrop", DismissBackdrop.String())
	assert.Equal(t, "escape", DismissEscape.String())
}
