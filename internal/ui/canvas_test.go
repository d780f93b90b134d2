package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvasPlacesText(t *testing.T) {
	c := newCanvas(10, 3)
	c.draw(1, 2, "ab", lipgloss.NewStyle())
	c.draw(1, 6, "cd", lipgloss.NewStyle())

	lines := strings.Split(c.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "" || lines[2] != "" {
		t.Errorf("expected empty first and last lines, got %q %q", lines[0], lines[2])
	}
	if lines[1] != "  ab  cd" {
		t.Errorf("line 1 = %q, want %q", lines[1], "  ab  cd")
	}
}

func TestCanvasOrdersSpansByColumn(t *testing.T) {
	c := newCanvas(10, 1)
	c.draw(0, 5, "xy", lipgloss.NewStyle())
	c.draw(0, 1, ">", lipgloss.NewStyle())
	if got := c.String(); got != " >   xy" {
		t.Errorf("got %q, want %q", got, " >   xy")
	}
}

func TestCanvasSkipsRowsOutOfBounds(t *testing.T) {
	c := newCanvas(10, 2)
	if c.draw(-1, 0, "above", lipgloss.NewStyle()) {
		t.Error("expected draw above the canvas to be skipped")
	}
	if c.draw(2, 0, "below", lipgloss.NewStyle()) {
		t.Error("expected draw below the canvas to be skipped")
	}
	if c.draw(0, 10, "right", lipgloss.NewStyle()) {
		t.Error("expected draw past the right edge to be skipped")
	}
	if c.draw(0, -5, "left", lipgloss.NewStyle()) {
		t.Error("expected draw fully left of the canvas to be skipped")
	}
	if got := c.String(); got != "\n" {
		t.Errorf("expected blank canvas, got %q", got)
	}
}

func TestCanvasClipsEdges(t *testing.T) {
	c := newCanvas(6, 2)
	if !c.draw(0, 3, "abcdef", lipgloss.NewStyle()) {
		t.Fatal("expected partially visible draw to succeed")
	}
	if !c.draw(1, -2, "abcdef", lipgloss.NewStyle()) {
		t.Fatal("expected partially visible draw to succeed")
	}
	lines := strings.Split(c.String(), "\n")
	if lines[0] != "   abc" {
		t.Errorf("right clip = %q, want %q", lines[0], "   abc")
	}
	if lines[1] != "cdef" {
		t.Errorf("left clip = %q, want %q", lines[1], "cdef")
	}
}

func TestCanvasOverlapKeepsEarlierText(t *testing.T) {
	c := newCanvas(10, 1)
	c.draw(0, 0, "abcd", lipgloss.NewStyle())
	c.draw(0, 2, "XYZ", lipgloss.NewStyle())
	if got := c.String(); got != "abcdZ" {
		t.Errorf("got %q, want %q", got, "abcdZ")
	}
}

func TestCanvasZeroSize(t *testing.T) {
	c := newCanvas(0, 0)
	if c.draw(0, 0, "x", lipgloss.NewStyle()) {
		t.Error("expected nothing to be drawable on an empty canvas")
	}
	if got := c.String(); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}

	neg := newCanvas(-3, -1)
	if got := neg.String(); got != "" {
		t.Errorf("expected empty output for negative size, got %q", got)
	}
}
