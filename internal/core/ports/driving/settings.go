package driving

import "github.com/custodia-labs/tavern/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get resolves current settings with defaults applied.
	Get() (domain.Settings, error)

	// Set stores a single setting by its configuration key.
	Set(key, value string) error

	// Keys returns the configuration keys the service understands.
	Keys() []string

	// Path returns the configuration file location.
	Path() string
}
