package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <url>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved vacancy by URL",
	Long: `Deletes every saved vacancy with the given URL.
Asks for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if listingService == nil {
		return errors.New("listing service not configured")
	}

	url := strings.TrimSpace(args[0])
	out := cmd.OutOrStdout()

	if !deleteYes {
		fmt.Fprintf(out, "Delete saved vacancies with URL %s? (y/n): ", url)
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n') //nolint:errcheck // EOF means no
		if !isYes(answer) {
			fmt.Fprintln(out, "Deletion cancelled.")
			return nil
		}
	}

	removed, err := listingService.DeleteByURL(cmd.Context(), url)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	if removed {
		fmt.Fprintf(out, "Deleted %s.\n", url)
	} else {
		fmt.Fprintf(out, "No saved vacancy with URL %s.\n", url)
	}
	return nil
}

// isYes reports whether a confirmation answer is affirmative.
func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
