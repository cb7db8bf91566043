package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Manage configuration",
	Long: `View and change configuration stored in config.toml.

Keys:
  storage.backend          json or sqlite
  storage.path             store file path
  hh.base_url              HeadHunter vacancies endpoint
  hh.user_agent            User-Agent sent to the API
  hh.access_token          optional OAuth bearer token
  hh.requests_per_second   request rate limit`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value. When the value of hh.access_token is
omitted it is read from the terminal without echo.`,
	Example: `  tavern config set storage.backend sqlite
  tavern config set hh.access_token`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	if path := settingsService.Path(); path != "" {
		fmt.Fprintf(out, "File: %s\n", path)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Storage]")
	fmt.Fprintf(out, "  Backend: %s\n", settings.Backend)
	fmt.Fprintf(out, "  Path: %s\n", settings.StorePath)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[HeadHunter]")
	fmt.Fprintf(out, "  Base URL: %s\n", settings.HHBaseURL)
	if settings.UserAgent != "" {
		fmt.Fprintf(out, "  User-Agent: %s\n", settings.UserAgent)
	} else {
		fmt.Fprintln(out, "  User-Agent: (default)")
	}
	if settings.AccessToken != "" {
		fmt.Fprintf(out, "  Access Token: %s\n", maskToken(settings.AccessToken))
	} else {
		fmt.Fprintln(out, "  Access Token: (not set)")
	}
	fmt.Fprintf(out, "  Requests/second: %s\n", strconv.FormatFloat(settings.RequestsPerSecond, 'f', -1, 64))

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == "hh.access_token":
		fmt.Fprint(cmd.OutOrStdout(), "Access token: ")
		value = readSecret(cmd.InOrStdin())
		fmt.Fprintln(cmd.OutOrStdout())
	default:
		return fmt.Errorf("%w: missing value for %s", domain.ErrInvalidInput, key)
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s updated.\n", key)
	return nil
}

// readSecret reads a line without echo when stdin is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	// Fallback to regular input
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line)
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
