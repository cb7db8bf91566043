package hh

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

// maxErrorBody caps how much of a failed response is kept in an APIError.
const maxErrorBody = 512

// APIError represents a non-2xx response from hh.ru.
type APIError struct {
	StatusCode int
	Body       string
	URL        string

	// RetryAfter is the server's requested back-off, zero when not sent.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hh: API error %d: %s (URL: %s)", e.StatusCode, e.Body, e.URL)
}

// Unwrap lets errors.Is match domain.ErrTransport.
func (e *APIError) Unwrap() error {
	return domain.ErrTransport
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// IsUnauthorized checks if the error indicates a rejected access token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}

// transportError wraps a network or decoding failure as domain.ErrTransport.
func transportError(op string, err error) error {
	return fmt.Errorf("hh: %s: %w: %w", op, domain.ErrTransport, err)
}
