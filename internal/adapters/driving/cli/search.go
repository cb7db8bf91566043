package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driving"
	"github.com/custodia-labs/tavern/internal/render"
)

var (
	searchDryRun bool
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search hh.ru and save the vacancies found",
	Long: `Searches hh.ru for vacancies matching the query and adds every one
found to the local store. Vacancies whose URL is already stored are left
untouched.

Only the first page of results (10 vacancies) is fetched.`,
	Example: `  tavern search python developer
  tavern search --dry-run golang`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchDryRun, "dry-run", "n", false, "show results without saving them")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if listingService == nil {
		return errors.New("listing service not configured")
	}

	query := strings.Join(args, " ")

	var (
		report *driving.SearchReport
		err    error
	)
	if searchDryRun {
		report, err = listingService.Search(cmd.Context(), query)
	} else {
		report, err = listingService.SearchAndSave(cmd.Context(), query)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		return writeReportJSON(out, report)
	}

	printReport(out, report, !searchDryRun)
	if searchDryRun && report.Found() > 0 {
		fmt.Fprintln(out)
		render.Listings(out, report.Listings)
	}
	return nil
}

// printReport writes the human summary of a search. The "no results" and
// "added" lines are mutually exclusive.
func printReport(w io.Writer, report *driving.SearchReport, saved bool) {
	fmt.Fprintf(w, "Found %d vacancies for %q.\n", report.Found(), report.Query)

	switch {
	case report.Found() == 0:
		fmt.Fprintf(w, "No vacancies found for %q.\n", report.Query)
	case saved:
		fmt.Fprintf(w, "Added %d new, %d already saved.\n", report.Added, report.Existing)
	}

	if report.Skipped > 0 {
		fmt.Fprintf(w, "Skipped %d malformed records.\n", report.Skipped)
	}
}

type reportJSON struct {
	Query    string           `json:"query"`
	Found    int              `json:"found"`
	Added    int              `json:"added"`
	Existing int              `json:"existing"`
	Skipped  int              `json:"skipped"`
	Listings []domain.Listing `json:"listings"`
}

func writeReportJSON(w io.Writer, report *driving.SearchReport) error {
	listings := report.Listings
	if listings == nil {
		listings = []domain.Listing{}
	}
	return writeJSON(w, reportJSON{
		Query:    report.Query,
		Found:    report.Found(),
		Added:    report.Added,
		Existing: report.Existing,
		Skipped:  report.Skipped,
		Listings: listings,
	})
}

// writeJSON writes v indented, without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return nil
}
