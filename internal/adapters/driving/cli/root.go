package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tavern/internal/core/ports/driving"
	"github.com/custodia-labs/tavern/internal/logger"
)

// version is set by SetVersion, normally from build flags.
var version = "dev"

// Services used by commands. Set by the initializer before a command runs,
// or directly by tests.
var (
	listingService  driving.ListingService
	settingsService driving.SettingsService
	changeNotifier  driving.ChangeNotifier
)

// Persistent flag values.
var (
	verbose   bool
	configDir string
	storePath string
)

// Options carries the persistent flags to the service initializer.
type Options struct {
	// ConfigDir overrides the configuration directory. Empty means default.
	ConfigDir string

	// StorePath overrides the configured store path. Empty means configured.
	StorePath string
}

// Services is the set of driving ports the commands use.
type Services struct {
	Listing  driving.ListingService
	Settings driving.SettingsService

	// Changes is optional; without it watching is unavailable.
	Changes driving.ChangeNotifier
}

// Initializer builds services once flags are parsed. The returned cleanup
// function runs after the command finishes and may be nil.
type Initializer func(opts Options) (*Services, func(), error)

var (
	initializer Initializer
	cleanup     func()
)

var rootCmd = &cobra.Command{
	Use:   "tavern",
	Short: "Search hh.ru vacancies and keep the ones you like",
	Long: `Tavern searches the HeadHunter (hh.ru) job board, normalises the
vacancies it finds and keeps them in a local store you can browse,
filter and prune.

Run "tavern shell" for the interactive menu or "tavern tui" for the
full-screen browser.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.tavern)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "listing store path (overrides storage.path)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// SetInitializer registers the function that builds services from flags.
func SetInitializer(fn Initializer) {
	initializer = fn
}

// SetServices installs services directly, bypassing the initializer.
func SetServices(s *Services) {
	listingService = s.Listing
	settingsService = s.Settings
	changeNotifier = s.Changes
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if initializer == nil || listingService != nil {
		return nil
	}

	services, done, err := initializer(Options{
		ConfigDir: configDir,
		StorePath: storePath,
	})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}

	SetServices(services)
	cleanup = done
	return nil
}
