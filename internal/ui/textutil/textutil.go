// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads s with spaces to targetWidth visual columns,
// truncating when it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}

// Wrap breaks s into at most maxLines lines of at most width columns,
// splitting on whitespace. Words wider than width are truncated, and the
// last line carries an ellipsis when text was dropped.
func Wrap(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	words := strings.Fields(s)
	var lines []string
	var cur strings.Builder
	curWidth := 0
	i := 0
	for ; i < len(words); i++ {
		w := Truncate(words[i], width)
		ww := VisualWidth(w)
		if curWidth == 0 {
			cur.WriteString(w)
			curWidth = ww
			continue
		}
		if curWidth+1+ww <= width {
			cur.WriteByte(' ')
			cur.WriteString(w)
			curWidth += 1 + ww
			continue
		}
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
		if len(lines) == maxLines {
			break
		}
		cur.WriteString(w)
		curWidth = ww
	}
	if curWidth > 0 && len(lines) < maxLines {
		lines = append(lines, cur.String())
	}
	if i < len(words) && len(lines) > 0 {
		last := lines[len(lines)-1]
		if VisualWidth(last)+VisualWidth(TruncateEllipsis) > width {
			last = Truncate(last, width)
		} else {
			last += TruncateEllipsis
		}
		lines[len(lines)-1] = last
	}
	return lines
}

// JoinFit joins items with sep, stopping before the first item that would
// push the result past width. A "+N" marker reports skipped items when it fits.
func JoinFit(items []string, sep string, width int) string {
	var b strings.Builder
	used := 0
	for i, it := range items {
		add := VisualWidth(it)
		if i > 0 {
			add += VisualWidth(sep)
		}
		if used+add > width {
			more := " +" + strconv.Itoa(len(items)-i)
			if used+VisualWidth(more) <= width {
				b.WriteString(more)
			}
			break
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(it)
		used += add
	}
	return b.String()
}

