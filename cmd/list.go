package cmd

import (
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/chris-regnier/journal/internal/journal"
	"github.com/chris-regnier/journal/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the last seven days and their journal files",
	Long: heredoc.Doc(`
		Show the last seven days, oldest first, with whether a journal file
		exists for each and how many lines were written below the header.

		This is the same information the --select menu shows, without
		entering the interactive view.
	`),
	Example: heredoc.Doc(`
		journal list
		journal list -o ~/journal
	`),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(os.Stdout)
	},
}

func listRun(w io.Writer) error {
	dir, err := resolveOutDir()
	if err != nil {
		return err
	}

	rows, err := journal.BuildRows(journal.New(dir), now())
	if err != nil {
		return err
	}
	ui.FormatWeek(w, rows)
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
