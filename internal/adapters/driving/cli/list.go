package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/logger"
	"github.com/custodia-labs/tavern/internal/render"
)

// sortSalary is the only supported --sort key.
const sortSalary = "salary"

var (
	listSort  string
	listDesc  bool
	listTop   int
	listJSON  bool
	listWatch bool
)

var listCmd = &cobra.Command{
	Use:     "list [filter...]",
	Aliases: []string{"ls"},
	Short:   "Show saved vacancies",
	Long: `Shows the saved vacancies. With a filter, only vacancies whose name,
description or company contain it (ignoring case) are shown.

Use --sort salary to order by salary and --top N to keep the first N.
--watch keeps running and re-renders whenever the store file changes.`,
	Example: `  tavern list
  tavern list python --sort salary --desc --top 5`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "", `sort key ("salary")`)
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort in descending order")
	listCmd.Flags().IntVar(&listTop, "top", 0, "show only the first N vacancies (0 = all)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output vacancies as JSON")
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "re-render when the store changes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listingService == nil {
		return errors.New("listing service not configured")
	}
	if listSort != "" && listSort != sortSalary {
		return fmt.Errorf("%w: unknown sort key %q", domain.ErrInvalidInput, listSort)
	}
	if listTop < 0 {
		return fmt.Errorf("%w: --top must not be negative", domain.ErrInvalidInput)
	}

	filter := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	if !listWatch {
		return showSaved(cmd.Context(), out, filter)
	}

	if changeNotifier == nil {
		return errors.New("watching is not supported by the configured store")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	changes, err := changeNotifier.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch store: %w", err)
	}

	if err := showSaved(ctx, out, filter); err != nil {
		return err
	}
	for range changes {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Store changed, reloading...")
		if err := showSaved(ctx, out, filter); err != nil {
			// The store may be mid-rewrite; the next change retries.
			logger.Warn("reload failed: %v", err)
		}
	}
	return nil
}

func showSaved(ctx context.Context, out io.Writer, filter string) error {
	listings, err := listingService.Saved(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load vacancies: %w", err)
	}

	if listSort == sortSalary {
		domain.SortBySalary(listings, listDesc)
	}
	if listTop > 0 && len(listings) > listTop {
		listings = listings[:listTop]
	}

	if listJSON {
		if listings == nil {
			listings = []domain.Listing{}
		}
		return writeJSON(out, listings)
	}

	if len(listings) == 0 {
		if filter != "" {
			fmt.Fprintf(out, "No saved vacancies match %q.\n", filter)
		} else {
			fmt.Fprintln(out, "No saved vacancies yet.")
		}
		return nil
	}

	fmt.Fprintf(out, "%d saved vacancies.\n", len(listings))
	fmt.Fprintln(out, render.Separator)
	render.Listings(out, listings)
	return nil
}
