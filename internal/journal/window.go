package journal

import (
	"fmt"
	"time"
)

// WindowSize is the number of candidate dates offered for selection.
const WindowSize = 7

// Row is the display state of one candidate date.
type Row struct {
	Date   time.Time
	Title  string
	Exists bool
	Lines  int // content lines below the header, 0 when missing
}

// Label returns the row text: the title alone for missing files, or
// "TITLE: lines" for existing ones.
func (r Row) Label() string {
	if !r.Exists {
		return r.Title
	}
	return fmt.Sprintf("%s: %d", r.Title, r.Lines)
}

// Window returns the WindowSize dates ending on today's calendar date,
// oldest first.
func Window(today time.Time) []time.Time {
	today = Day(today)
	dates := make([]time.Time, WindowSize)
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i-(WindowSize-1))
	}
	return dates
}

// BuildRows queries the store for every date in the window ending today.
// Content line counts are clamped at zero for files truncated below their
// header.
func BuildRows(s *Store, today time.Time) ([]Row, error) {
	dates := Window(today)
	rows := make([]Row, len(dates))
	for i, d := range dates {
		row := Row{Date: d, Title: Title(d), Exists: s.Exists(d)}
		if row.Exists {
			n, err := s.LineCount(d)
			if err != nil {
				return nil, fmt.Errorf("counting lines of %s: %w", row.Title, err)
			}
			row.Lines = max(n-HeaderLines, 0)
		}
		rows[i] = row
	}
	return rows, nil
}
