package hh

import (
	"time"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

const (
	// SourceType is the source identifier for hh.ru.
	SourceType = "hh"

	// PageSize is the fixed number of vacancies requested per search.
	PageSize = 10

	// Page is the fixed page index requested per search.
	Page = 0

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "tavern/dev (https://github.com/custodia-labs/tavern)"
)

// Config holds the settings for an hh.ru source.
type Config struct {
	// BaseURL is the vacancies search endpoint.
	BaseURL string

	// UserAgent identifies the application to hh.ru.
	UserAgent string

	// AccessToken is an optional OAuth bearer token.
	AccessToken string

	// RequestsPerSecond throttles outgoing requests.
	RequestsPerSecond float64

	// Timeout bounds a single HTTP request.
	Timeout time.Duration
}

// ConfigFromSettings derives the source config from application settings.
func ConfigFromSettings(s domain.Settings) Config {
	cfg := Config{
		BaseURL:           s.HHBaseURL,
		UserAgent:         s.UserAgent,
		AccessToken:       s.AccessToken,
		RequestsPerSecond: s.RequestsPerSecond,
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = domain.DefaultHHBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = domain.DefaultRequestsPerSecond
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
