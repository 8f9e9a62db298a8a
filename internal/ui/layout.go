package ui

// Rect is a cell-addressed rectangle. X/Y are the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CenterRect returns a w×h rect centered in a width×height area.
// Odd remainders go to the right/bottom, matching lipgloss.Place.
func CenterRect(width, height, w, h int) Rect {
	x := (width - w) / 2
	y := (height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

const (
	// cardWidth and cardHeight are the outer card dimensions including the border.
	cardWidth  = 34
	cardHeight = 9
	// cardContentWidth excludes border (2) and horizontal padding (2).
	cardContentWidth = cardWidth - 4
	// cardContentLines is the number of text lines inside the border.
	cardContentLines = cardHeight - 2
	// cardLinksLine is the content line holding the Code/Demo links.
	cardLinksLine = cardContentLines - 1

	gridColGap = 1
	gridRowGap = 0
)

// GridLayout places fixed-size cards left-to-right, top-to-bottom.
type GridLayout struct {
	Columns    int
	CardWidth  int
	CardHeight int
	ColGap     int
	RowGap     int
}

// NewGridLayout fits as many card columns as the width allows (at least one).
func NewGridLayout(width int) GridLayout {
	cols := (width + gridColGap) / (cardWidth + gridColGap)
	if cols < 1 {
		cols = 1
	}
	return GridLayout{
		Columns:    cols,
		CardWidth:  cardWidth,
		CardHeight: cardHeight,
		ColGap:     gridColGap,
		RowGap:     gridRowGap,
	}
}

// Rows returns the number of grid rows needed for n cards.
func (l GridLayout) Rows(n int) int {
	if n <= 0 || l.Columns <= 0 {
		return 0
	}
	return (n + l.Columns - 1) / l.Columns
}

// CardRect returns the grid-relative rect of card i.
func (l GridLayout) CardRect(i int) Rect {
	row, col := i/l.Columns, i%l.Columns
	return Rect{
		X: col * (l.CardWidth + l.ColGap),
		Y: row * (l.CardHeight + l.RowGap),
		W: l.CardWidth,
		H: l.CardHeight,
	}
}

// IndexAt returns the card index under the grid-relative cell (x, y).
// Gaps between cards and cells past the last card miss.
func (l GridLayout) IndexAt(x, y, n int) (int, bool) {
	if x < 0 || y < 0 || l.Columns <= 0 {
		return 0, false
	}
	col := x / (l.CardWidth + l.ColGap)
	row := y / (l.CardHeight + l.RowGap)
	if col >= l.Columns {
		return 0, false
	}
	i := row*l.Columns + col
	if i >= n {
		return 0, false
	}
	if !l.CardRect(i).Contains(x, y) {
		return 0, false
	}
	return i, true
}

// Move returns the index reached from i by moving dx columns and dy rows,
// clamped to [0, n).
func (l GridLayout) Move(i, dx, dy, n int) int {
	if n == 0 {
		return 0
	}
	row, col := i/l.Columns, i%l.Columns
	col += dx
	if col < 0 {
		col = 0
	}
	if col >= l.Columns {
		col = l.Columns - 1
	}
	row += dy
	if row < 0 {
		row = 0
	}
	next := row*l.Columns + col
	if next >= n {
		// Moving down past a short last row lands on the last card.
		next = n - 1
	}
	return next
}
