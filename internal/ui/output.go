package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/chris-regnier/journal/internal/journal"
)

var (
	createdColor = color.New(color.FgGreen)
	openedColor  = color.New(color.FgCyan)
	missingColor = color.New(color.FgRed)
	headerColor  = color.New(color.Bold)
)

// FormatCreated reports a newly created journal file.
func FormatCreated(w io.Writer, path string) {
	createdColor.Fprint(w, "Created new journal file: ")
	fmt.Fprintln(w, path)
}

// FormatOpened reports an existing journal file about to be opened.
func FormatOpened(w io.Writer, path string) {
	openedColor.Fprint(w, "Opening existing journal file: ")
	fmt.Fprintln(w, path)
}

// FormatWeek prints the candidate window as a table, oldest first.
func FormatWeek(w io.Writer, rows []journal.Row) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(headerColor.Sprint("DATE"), headerColor.Sprint("STATUS"), headerColor.Sprint("LINES"))
	for _, r := range rows {
		status := missingColor.Sprint("missing")
		lines := "-"
		if r.Exists {
			status = "exists"
			lines = strconv.Itoa(r.Lines)
		}
		tbl.AddRow(r.Title, status, lines)
	}
	fmt.Fprintln(w, tbl)
}
