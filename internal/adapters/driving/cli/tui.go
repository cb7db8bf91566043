package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/tavern/internal/adapters/driving/tui"
)

// isTerminal reports whether standard output is a terminal. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the full-screen terminal interface for Tavern.

Search hh.ru, browse saved vacancies, filter them, sort by salary and
delete the ones you no longer want. The saved list refreshes when the
store file changes.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Search / Select
  /        - Filter saved vacancies
  s        - Sort by salary
  d        - Delete
  Esc      - Back
  ctrl+c   - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if listingService == nil {
		return errors.New("listing service not configured")
	}
	if !isTerminal() {
		return tui.ErrNotATerminal
	}

	app, err := tui.NewApp(&tui.Ports{
		Listings: listingService,
		Changes:  changeNotifier,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
