package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// span is a run of text placed at an absolute column.
type span struct {
	x    int
	text string
}

// canvas is a fixed-size grid of lines that text is placed on by absolute
// position. Anything falling outside the grid is clipped or dropped, so a
// terminal that is too small degrades the picture instead of failing.
type canvas struct {
	width  int
	height int
	lines  [][]span
}

func newCanvas(width, height int) *canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &canvas{width: width, height: height, lines: make([][]span, height)}
}

// draw places text rendered with style at (y, x) and reports whether any of
// it is visible.
func (c *canvas) draw(y, x int, text string, style lipgloss.Style) bool {
	if y < 0 || y >= c.height || x >= c.width {
		return false
	}
	w := ansi.StringWidth(text)
	if x+w <= 0 {
		return false
	}
	if x < 0 {
		text = ansi.TruncateLeft(text, -x, "")
		w += x
		x = 0
	}
	if x+w > c.width {
		text = ansi.Truncate(text, c.width-x, "")
	}
	if text == "" {
		return false
	}
	c.lines[y] = append(c.lines[y], span{x: x, text: style.Render(text)})
	return true
}

// String renders every line, padding gaps between spans with spaces.
// Overlapping spans are cut so a later column never moves earlier text.
func (c *canvas) String() string {
	out := make([]string, c.height)
	for y, spans := range c.lines {
		sort.SliceStable(spans, func(i, j int) bool { return spans[i].x < spans[j].x })
		var b strings.Builder
		col := 0
		for _, s := range spans {
			text := s.text
			if s.x < col {
				text = ansi.TruncateLeft(text, col-s.x, "")
			} else {
				b.WriteString(strings.Repeat(" ", s.x-col))
				col = s.x
			}
			b.WriteString(text)
			col += ansi.StringWidth(text)
		}
		out[y] = b.String()
	}
	return strings.Join(out, "\n")
}
