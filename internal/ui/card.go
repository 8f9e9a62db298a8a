package ui

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"folio/internal/project"
	"folio/internal/ui/textutil"
)

// Link labels as rendered on a card's links row.
const (
	cardCodeLabel = "[Code]"
	cardDemoLabel = "[Demo]"
)

// Zone identifies the part of a card under the pointer.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneCard      // anywhere outside the links row
	ZoneLinks     // links row, between or beside links
	ZoneCode      // the Code link
	ZoneDemo      // the Demo link
)

func (z Zone) String() string {
	switch z {
	case ZoneCard:
		return "card"
	case ZoneLinks:
		return "links"
	case ZoneCode:
		return "code"
	case ZoneDemo:
		return "demo"
	default:
		return "none"
	}
}

var countPrinter = message.NewPrinter(language.English)

// FormatViews renders a view count with thousands separators.
func FormatViews(n int) string {
	if n < 0 {
		n = 0
	}
	return countPrinter.Sprintf("%d", n)
}

// Card is the compact grid representation of one project.
type Card struct {
	Project project.Project
	Index   int
	Views   int
	Visible bool
	// Image is the resolved thumbnail, switched to the fallback when a probe fails.
	Image string
}

// NewCard builds a hidden card for p at grid position index.
func NewCard(p project.Project, index int) *Card {
	return &Card{
		Project: p,
		Index:   index,
		Image:   p.ImageURL(),
	}
}

// UseFallbackImage switches the thumbnail to the deterministic fallback.
func (c *Card) UseFallbackImage() {
	c.Image = c.Project.FallbackImage()
}

// Lines returns the card's content lines, each at most cardContentWidth wide.
func (c *Card) Lines() []string {
	w := cardContentWidth
	p := c.Project
	lines := make([]string, 0, cardContentLines)

	lines = append(lines, Styles.CardViews.Render(textutil.Truncate(FormatViews(c.Views)+" views", w)))

	badge := ""
	if p.Type != "" {
		badge = " [" + p.Type + "]"
	}
	hostWidth := w - 2 - textutil.VisualWidth(badge)
	if hostWidth < 4 {
		hostWidth = 4
		badge = textutil.Truncate(badge, w-2-hostWidth)
	}
	thumb := "▣ " + textutil.Truncate(project.ImageHost(c.Image), hostWidth)
	lines = append(lines, thumb+Styles.CardType.Render(badge))

	lines = append(lines, Styles.CardTitle.Render(textutil.Truncate(p.Title, w)))

	desc := textutil.Wrap(p.Description, w, 2)
	for len(desc) < 2 {
		desc = append(desc, "")
	}
	for _, d := range desc {
		lines = append(lines, Styles.Normal.Render(d))
	}

	lines = append(lines, Styles.Tag.Render(textutil.JoinFit(p.Technologies, " · ", w)))
	lines = append(lines, c.linksLine())
	return lines
}

func (c *Card) linksLine() string {
	var parts []string
	if c.Project.HasCode() {
		parts = append(parts, Styles.Link.Render(cardCodeLabel))
	}
	if c.Project.HasDemo() {
		parts = append(parts, Styles.Link.Render(cardDemoLabel))
	}
	return strings.Join(parts, " ")
}

// View renders the card box. Unrevealed cards keep their footprint but show nothing.
func (c *Card) View(selected bool) string {
	if !c.Visible {
		return Styles.CardHidden.Render(strings.Repeat("\n", cardContentLines-1))
	}
	style := Styles.Card
	if selected {
		style = Styles.CardSelected
	}
	return style.Render(strings.Join(c.Lines(), "\n"))
}

// ZoneAt classifies a card-relative cell (border included) for click handling.
func (c *Card) ZoneAt(x, y int) Zone {
	if x < 0 || y < 0 || x >= cardWidth || y >= cardHeight {
		return ZoneNone
	}
	// Border (1) then content lines.
	if y-1 != cardLinksLine {
		return ZoneCard
	}
	col := x - 2 // border + left padding
	start := 0
	if c.Project.HasCode() {
		if col >= start && col < start+len(cardCodeLabel) {
			return ZoneCode
		}
		start += len(cardCodeLabel) + 1
	}
	if c.Project.HasDemo() {
		if col >= start && col < start+len(cardDemoLabel) {
			return ZoneDemo
		}
	}
	return ZoneLinks
}

// LinkURL returns the URL for a link zone.
func (c *Card) LinkURL(z Zone) string {
	switch z {
	case ZoneCode:
		return c.Project.GithubURL
	case ZoneDemo:
		return c.Project.LiveDemoURL
	default:
		return ""
	}
}
