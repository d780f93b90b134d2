package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/chris-regnier/journal/internal/config"
	"github.com/chris-regnier/journal/internal/editor"
	"github.com/chris-regnier/journal/internal/journal"
	"github.com/chris-regnier/journal/internal/logs"
	"github.com/chris-regnier/journal/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile    string
	outDir     string
	selectDate bool
	dateArg    string
	editorArg  string
	appConfig  *config.Config
)

// Collaborators replaced in tests.
var (
	now        = time.Now
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	pickDate   = func(rows []journal.Row, theme ui.Theme) (ui.Selection, error) { return ui.Pick(rows, theme) }
	openEditor = editor.Open
)

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "Create or open a date-titled journal file",
	Long: heredoc.Doc(`
		journal creates or opens a plain-text journal file named after a date,
		e.g. 2024-03-15-FRI.md, and opens it in your editor.

		New files start with the title, an underline of '=' characters and a
		blank line. Existing files are opened untouched.

		With --select, an interactive menu lists the last seven days. Days that
		already have a file show their line count; missing days are highlighted.
	`),
	Example: heredoc.Doc(`
		journal
		journal -o ~/journal
		journal --select
		journal --date "March 15, 2024"
	`),
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if err := logs.Initialize(appConfig.DebugLog); err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return journalRun(cmd.OutOrStdout())
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// resolveOutDir returns the output directory from the flag, falling back to
// config, and validates that it exists.
func resolveOutDir() (string, error) {
	dir := appConfig.OutDir
	if outDir != "" {
		dir = outDir
	}
	dir, err := config.ExpandDir(dir)
	if err != nil {
		return "", fmt.Errorf("expanding output directory: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	if err := journal.ValidateDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// resolveDate returns the date to open and whether to proceed. A cancelled
// picker yields proceed=false.
func resolveDate(store *journal.Store) (time.Time, bool, error) {
	switch {
	case selectDate:
		if !isTerminal() {
			return time.Time{}, false, fmt.Errorf("--select requires an interactive terminal")
		}
		rows, err := journal.BuildRows(store, now())
		if err != nil {
			return time.Time{}, false, err
		}
		sel, err := pickDate(rows, ui.ResolveTheme(appConfig.Theme))
		if err != nil {
			return time.Time{}, false, fmt.Errorf("running date picker: %w", err)
		}
		if !sel.Confirmed {
			logs.Logger.Printf("selection cancelled, nothing to do")
			return time.Time{}, false, nil
		}
		return sel.Date, true, nil
	case dateArg != "":
		t, err := dateparse.ParseLocal(dateArg)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("parsing date %q: %w", dateArg, err)
		}
		return journal.Day(t), true, nil
	default:
		return journal.Day(now()), true, nil
	}
}

func journalRun(w io.Writer) error {
	dir, err := resolveOutDir()
	if err != nil {
		return err
	}
	store := journal.New(dir)

	date, ok, err := resolveDate(store)
	if err != nil || !ok {
		return err
	}

	path, created, err := store.EnsureCreated(date)
	if err != nil {
		return fmt.Errorf("creating journal file: %w", err)
	}
	if created {
		ui.FormatCreated(w, path)
	} else {
		ui.FormatOpened(w, path)
	}

	editorCmd := editorArg
	if editorCmd == "" {
		editorCmd = appConfig.Editor
	}
	editorCmd = editor.ResolveEditor(editorCmd)
	logs.Logger.Printf("opening %s with %q", path, editorCmd)
	return openEditor(editorCmd, path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory for journal files (default \".\")")
	rootCmd.Flags().BoolVarP(&selectDate, "select", "s", false, "select a date from the last week")
	rootCmd.Flags().StringVarP(&dateArg, "date", "d", "", "open the entry for a specific date")
	rootCmd.Flags().StringVarP(&editorArg, "editor", "e", "", "editor command (default $EDITOR, $VISUAL, then vi)")
	rootCmd.MarkFlagsMutuallyExclusive("select", "date")

	cobra.OnFinalize(func() { logs.Close() })

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
