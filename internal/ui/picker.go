package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chris-regnier/journal/internal/journal"
	"github.com/chris-regnier/journal/internal/logs"
)

type pickerState int

const (
	stateBrowsing pickerState = iota
	stateConfirmed
	stateCancelled
)

const (
	rowTop        = 4 // line of the first row
	cursorGlyph   = ">"
	cursorGap     = 2 // columns between the arrow and the row text
	helpBottomGap = 2 // instruction line sits this many lines above the bottom
	helpLeft      = 2

	defaultWidth  = 80
	defaultHeight = 24
)

// Selection is the outcome of a picker run.
type Selection struct {
	Date      time.Time
	Confirmed bool
}

// pickerModel is the Bubble Tea model for the date picker.
type pickerModel struct {
	rows   []journal.Row
	cursor int
	state  pickerState
	keys   pickerKeyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool
}

func newPickerModel(rows []journal.Row, theme Theme) pickerModel {
	h := help.New()
	h.Styles.ShortKey = theme.HelpStyle()
	h.Styles.ShortDesc = theme.HelpStyle()
	h.Styles.ShortSeparator = theme.HelpStyle()

	return pickerModel{
		rows:   rows,
		cursor: len(rows) - 1,
		state:  stateBrowsing,
		keys:   newPickerKeyMap(),
		help:   h,
		theme:  theme,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.state != stateBrowsing {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(0, m.cursor-1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(len(m.rows)-1, m.cursor+1)
		case key.Matches(msg, m.keys.Select):
			m.state = stateConfirmed
			logs.Logger.Printf("picker confirmed %s", m.rows[m.cursor].Title)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.state = stateCancelled
			logs.Logger.Printf("picker cancelled")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.state != stateBrowsing {
		return ""
	}

	width, height := m.size()
	c := newCanvas(width, height)

	for i, row := range m.rows {
		label := row.Label()
		x := (width - ansi.StringWidth(label)) / 2
		y := rowTop + i

		if i == m.cursor {
			c.draw(y, x-cursorGap, cursorGlyph, m.theme.CursorStyle())
		}
		c.draw(y, x, label, m.rowStyle(row))
	}

	c.draw(height-helpBottomGap, helpLeft, m.help.ShortHelpView(m.keys.ShortHelp()), lipgloss.NewStyle())

	return c.String()
}

func (m pickerModel) rowStyle(row journal.Row) lipgloss.Style {
	if row.Exists {
		return m.theme.ExistingStyle()
	}
	return m.theme.MissingStyle()
}

// size returns the drawing area, assuming a standard terminal until the
// first WindowSizeMsg arrives.
func (m pickerModel) size() (int, int) {
	if !m.ready {
		return defaultWidth, defaultHeight
	}
	return m.width, m.height
}

func (m pickerModel) selection() Selection {
	if m.state != stateConfirmed {
		return Selection{}
	}
	return Selection{Date: m.rows[m.cursor].Date, Confirmed: true}
}

// Pick runs the interactive date picker over rows, oldest first, with the
// cursor starting on the last row. The terminal is restored before Pick
// returns on every path, including cancellation and errors.
func Pick(rows []journal.Row, theme Theme, opts ...tea.ProgramOption) (Selection, error) {
	if len(rows) == 0 {
		return Selection{}, errors.New("no dates to pick from")
	}

	m := newPickerModel(rows, theme)
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	result, err := p.Run()
	if err != nil {
		return Selection{}, err
	}

	pm, ok := result.(pickerModel)
	if !ok {
		return Selection{}, errors.New("unexpected picker result")
	}
	return pm.selection(), nil
}
