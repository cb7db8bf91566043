package hh

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

const twoItems = `{
	"found": 1532,
	"page": 0,
	"per_page": 10,
	"items": [
		{"name": "Go developer", "alternate_url": "https://hh.ru/vacancy/1"},
		{"name": "Python developer", "alternate_url": "https://hh.ru/vacancy/2", "salary": 100000}
	]
}`

func newTestConnector(t *testing.T, handler http.HandlerFunc) *Connector {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Config{
		BaseURL:           server.URL + "/vacancies",
		RequestsPerSecond: 1000,
	})
}

func TestConnector_Type(t *testing.T) {
	assert.Equal(t, "hh", New(Config{}).Type())
}

func TestConnector_Fetch_Success(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vacancies", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoItems))
	})

	result, err := c.Fetch(context.Background(), "golang")
	require.NoError(t, err)

	assert.Equal(t, "golang", result.Query)
	assert.Equal(t, 1532, result.Found)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "hh", result.Items[0].Source)
	assert.Equal(t, 1, result.Items[1].Index)
	assert.JSONEq(t, `{"name": "Go developer", "alternate_url": "https://hh.ru/vacancy/1"}`, string(result.Items[0].Content))
}

func TestConnector_Fetch_QueryParameters(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "python разработчик", q.Get("text"))
		assert.Equal(t, "10", q.Get("per_page"))
		assert.Equal(t, "0", q.Get("page"))
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	_, err := c.Fetch(context.Background(), "python разработчик")
	require.NoError(t, err)
}

func TestConnector_Fetch_Headers(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("HH-User-Agent"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	_, err := c.Fetch(context.Background(), "go")
	require.NoError(t, err)
}

func TestConnector_Fetch_BearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL, AccessToken: "secret-token", RequestsPerSecond: 1000})
	_, err := c.Fetch(context.Background(), "go")
	require.NoError(t, err)
}

func TestConnector_Fetch_NoItemsKey(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"found": 0}`))
	})

	result, err := c.Fetch(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestConnector_Fetch_HTTPError(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Fetch(context.Background(), "go")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransport))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "boom")
}

func TestConnector_Fetch_RateLimited(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(HeaderRetryAfter, "2")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Fetch(context.Background(), "go")
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	assert.False(t, IsUnauthorized(err))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 2*time.Second, apiErr.RetryAfter)
}

func TestConnector_Fetch_InvalidJSON(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := c.Fetch(context.Background(), "go")
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

func TestConnector_Fetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	c := New(Config{BaseURL: base, RequestsPerSecond: 1000})
	_, err := c.Fetch(context.Background(), "go")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

func TestConnector_Close(t *testing.T) {
	c := New(Config{})
	require.NoError(t, c.Connect(context.Background()))
	require.NoError(t, c.Close())

	_, err := c.Fetch(context.Background(), "go")
	assert.True(t, errors.Is(err, domain.ErrSourceClosed))
	assert.True(t, errors.Is(c.Connect(context.Background()), domain.ErrSourceClosed))
}

func TestConfigFromSettings(t *testing.T) {
	s := domain.DefaultSettings()
	s.AccessToken = "tok"

	cfg := ConfigFromSettings(s)
	assert.Equal(t, domain.DefaultHHBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, "tok", cfg.AccessToken)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestRateLimiter_ObserveRetryAfter(t *testing.T) {
	r := NewRateLimiter(1000)

	resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}
	resp.Header.Set(HeaderRetryAfter, "1")
	assert.Equal(t, time.Second, r.Observe(resp))
	assert.True(t, r.BlockedUntil().After(time.Now()))

	ok := &http.Response{StatusCode: http.StatusOK, Header: http.Header{}}
	assert.Zero(t, r.Observe(ok))
	assert.Zero(t, r.Observe(nil))
}

func TestRateLimiter_WaitRespectsContext(t *testing.T) {
	r := NewRateLimiter(1000)
	resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}
	resp.Header.Set(HeaderRetryAfter, "60")
	r.Observe(resp)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := r.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
