package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected cards, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "238" // Dark gray - for unrevealed cards
	ColorTag       = "62"  // Indigo - for technology tags
)

// Styles contains shared style definitions used across the gallery and modal.
var Styles = struct {
	Title  lipgloss.Style // Bold accent color - for main titles
	Hint   lipgloss.Style // Help/hint text (muted color)
	Muted  lipgloss.Style // Dimmed text (muted color)
	Normal lipgloss.Style // Normal text (text color)
	Empty  lipgloss.Style // Empty state text (muted, italic)
	Status lipgloss.Style // Status line (accent color)

	Card         lipgloss.Style // Revealed card box
	CardSelected lipgloss.Style // Revealed card box under the cursor
	CardHidden   lipgloss.Style // Card box before its reveal fires
	CardTitle    lipgloss.Style
	CardType     lipgloss.Style
	CardViews    lipgloss.Style
	Tag          lipgloss.Style
	Link         lipgloss.Style

	Modal      lipgloss.Style // Detail overlay box
	ModalTitle lipgloss.Style
	ModalClose lipgloss.Style
	Section    lipgloss.Style // Section headers (highlight color)
	TechItem   lipgloss.Style // One cell of the technology grid
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),

	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardContentLines),
	CardSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardContentLines),
	CardHidden: lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardContentLines),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	CardType: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	CardViews: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Tag: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorTag)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Underline(true),

	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2),
	ModalTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	ModalClose: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	TechItem: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
}
