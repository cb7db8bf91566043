package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driven"
	"github.com/custodia-labs/tavern/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyStorageBackend    = "storage.backend"
	KeyStoragePath       = "storage.path"
	KeyHHBaseURL         = "hh.base_url"
	KeyHHUserAgent       = "hh.user_agent"
	KeyHHAccessToken     = "hh.access_token"
	KeyRequestsPerSecond = "hh.requests_per_second"
)

var settingKeys = []string{
	KeyStorageBackend,
	KeyStoragePath,
	KeyHHBaseURL,
	KeyHHUserAgent,
	KeyHHAccessToken,
	KeyRequestsPerSecond,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or unusable stored values fall back to defaults.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := domain.Settings{
		Backend:           s.getBackend(defaults.Backend),
		StorePath:         s.getString(KeyStoragePath, defaults.StorePath),
		HHBaseURL:         s.getString(KeyHHBaseURL, defaults.HHBaseURL),
		UserAgent:         s.configStore.GetString(KeyHHUserAgent),   // Empty means client default
		AccessToken:       s.configStore.GetString(KeyHHAccessToken), // Empty means anonymous
		RequestsPerSecond: s.getPositiveFloat(KeyRequestsPerSecond, defaults.RequestsPerSecond),
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// Set validates and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyStorageBackend:
		backend := domain.StorageBackend(strings.ToLower(value))
		if !backend.IsValid() {
			return fmt.Errorf("%w: storage backend %q (want json or sqlite)", domain.ErrUnsupportedType, value)
		}
		return s.save(key, backend.String())

	case KeyStoragePath, KeyHHBaseURL:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		return s.save(key, value)

	case KeyHHUserAgent, KeyHHAccessToken:
		return s.save(key, value)

	case KeyRequestsPerSecond:
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil || rps <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		return s.save(key, rps)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns the configuration keys the service understands.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// Path returns the configuration file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) save(key string, value any) error {
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// getString returns a config value or default if empty.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getPositiveFloat(key string, defaultVal float64) float64 {
	if val := s.configStore.GetFloat(key); val > 0 {
		return val
	}
	return defaultVal
}

// getBackend returns the configured backend, or defaultVal when unset or unknown.
func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(strings.ToLower(s.configStore.GetString(KeyStorageBackend)))
	if backend.IsValid() {
		return backend
	}
	return defaultVal
}
