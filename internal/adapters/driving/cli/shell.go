package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/render"
)

const shellGreeting = "Welcome to Tavern, the vacancy tavern."

var shellMenu = []string{
	"1 - Search vacancies",
	"2 - Show saved",
	"3 - Delete a vacancy",
	"4 - Exit",
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu",
	Long: `Starts a numbered menu for searching, browsing and deleting vacancies.
Reads commands from standard input until "4" or end of input.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	if listingService == nil {
		return errors.New("listing service not configured")
	}

	sh := &shell{
		ctx: cmd.Context(),
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
	return sh.run()
}

// shell is one interactive menu session.
type shell struct {
	ctx context.Context
	in  *bufio.Scanner
	out io.Writer
}

func (s *shell) run() error {
	fmt.Fprintln(s.out, shellGreeting)
	for _, item := range shellMenu {
		fmt.Fprintln(s.out, item)
	}

	for {
		command, ok := s.prompt("\nEnter a command number: ")
		if !ok {
			return s.in.Err()
		}

		switch command {
		case "1":
			s.search()
		case "2":
			s.show()
		case "3":
			s.delete()
		case "4":
			fmt.Fprintln(s.out, "Thanks for visiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "No such command.")
		}
	}
}

// prompt prints text and reads one trimmed line. ok is false at end of input.
func (s *shell) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *shell) search() {
	query, ok := s.prompt("Enter search keywords: ")
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "Searching for %s\n", query)

	report, err := listingService.SearchAndSave(s.ctx, query)
	if err != nil {
		fmt.Fprintf(s.out, "Search failed: %v\n", err)
		return
	}
	printReport(s.out, report, true)
}

func (s *shell) show() {
	listings, err := listingService.Saved(s.ctx, "")
	if err != nil {
		fmt.Fprintf(s.out, "Failed to load vacancies: %v\n", err)
		return
	}
	if len(listings) == 0 {
		fmt.Fprintln(s.out, "No saved vacancies yet.")
		return
	}

	fmt.Fprintln(s.out, "Loading saved vacancies...")
	fmt.Fprintf(s.out, "%d saved vacancies.\n", len(listings))
	fmt.Fprintln(s.out, render.Separator)
	render.Listings(s.out, listings)
}

func (s *shell) delete() {
	listings, err := listingService.Saved(s.ctx, "")
	if err != nil {
		fmt.Fprintf(s.out, "Failed to load vacancies: %v\n", err)
		return
	}
	if len(listings) == 0 {
		fmt.Fprintln(s.out, "Nothing to delete.")
		return
	}

	fmt.Fprintln(s.out, "Saved vacancies:")
	for i, l := range listings {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, render.Summary(l))
	}
	fmt.Fprintln(s.out, render.Separator)

	answer, ok := s.prompt(`Enter the number to delete, or "0" to cancel: `)
	if !ok {
		return
	}
	choice, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
		return
	}
	if choice == 0 {
		fmt.Fprintln(s.out, "Deletion cancelled.")
		return
	}
	if choice < 1 || choice > len(listings) {
		fmt.Fprintln(s.out, "No vacancy with that number. Please try again.")
		return
	}

	s.confirmDelete(listings[choice-1])
}

func (s *shell) confirmDelete(l domain.Listing) {
	answer, ok := s.prompt(fmt.Sprintf("Delete %q? (y/n): ", l.Name))
	if !ok {
		return
	}
	if !isYes(answer) {
		fmt.Fprintln(s.out, "Deletion cancelled.")
		return
	}

	removed, err := listingService.Delete(s.ctx, l)
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Failed to delete %q: %v\n", l.Name, err)
	case removed:
		fmt.Fprintf(s.out, "Deleted %q.\n", l.Name)
	default:
		fmt.Fprintf(s.out, "Could not delete %q.\n", l.Name)
	}
}
