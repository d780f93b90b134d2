package cmd

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/chris-regnier/journal/internal/config"
	"github.com/chris-regnier/journal/internal/journal"
	"github.com/chris-regnier/journal/internal/ui"
	"github.com/fatih/color"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local)

// editorCall records invocations of the editor collaborator.
type editorCall struct {
	editor string
	path   string
}

type testEnv struct {
	dir     string
	editors []editorCall
	picks   [][]journal.Row
}

// setupTestEnv resets package state, points the output directory at a temp
// dir and replaces the clock, terminal check, picker and editor.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{dir: t.TempDir()}

	prevNow, prevTerm, prevPick, prevOpen := now, isTerminal, pickDate, openEditor
	prevColor := color.NoColor
	t.Cleanup(func() {
		now, isTerminal, pickDate, openEditor = prevNow, prevTerm, prevPick, prevOpen
		color.NoColor = prevColor
		cfgFile, outDir, selectDate, dateArg, editorArg = "", "", false, "", ""
		appConfig = nil
	})

	color.NoColor = true
	appConfig = &config.Config{OutDir: "."}
	cfgFile, selectDate, dateArg, editorArg = "", false, "", ""
	outDir = env.dir

	now = func() time.Time { return fixedNow }
	isTerminal = func() bool { return true }
	pickDate = func(rows []journal.Row, theme ui.Theme) (ui.Selection, error) {
		t.Fatal("picker should not run")
		return ui.Selection{}, nil
	}
	openEditor = func(editorCmd, path string) error {
		env.editors = append(env.editors, editorCall{editor: editorCmd, path: path})
		return nil
	}
	return env
}

// stripANSI drops styling so command output can be compared as plain text.
func stripANSI(s string) string {
	return ansi.Strip(s)
}
