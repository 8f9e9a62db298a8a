package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// DismissTrigger names what closed the modal.
type DismissTrigger int

const (
	DismissCloseButton DismissTrigger = iota
	DismissBackdrop
	DismissEscape
)

func (t DismissTrigger) String() string {
	switch t {
	case DismissCloseButton:
		return "close-button"
	case DismissBackdrop:
		return "backdrop"
	case DismissEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// DismissKey is the key that closes an open modal.
const DismissKey = "esc"

// RenderOverlay draws box centered on a blank backdrop covering the terminal.
func RenderOverlay(width, height int, box string) string {
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}

// OverlayClick classifies a left click made while m is open.
// It returns the dismissal trigger, or false when the click lands inside
// the box away from the close control.
func OverlayClick(m *ProjectModal, x, y int) (DismissTrigger, bool) {
	if m.CloseButton().Contains(x, y) {
		return DismissCloseButton, true
	}
	if !m.Bounds().Contains(x, y) {
		return DismissBackdrop, true
	}
	return 0, false
}
