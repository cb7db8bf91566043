package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageBackend_IsValid(t *testing.T) {
	assert.True(t, StorageBackendJSON.IsValid())
	assert.True(t, StorageBackendSQLite.IsValid())
	assert.False(t, StorageBackend("").IsValid())
	assert.False(t, StorageBackend("postgres").IsValid())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, StorageBackendJSON, s.Backend)
	assert.Equal(t, "vacancies.json", s.StorePath)
	assert.Equal(t, DefaultHHBaseURL, s.HHBaseURL)
	assert.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		target error
	}{
		{"unknown backend", func(s *Settings) { s.Backend = "csv" }, ErrUnsupportedType},
		{"empty path", func(s *Settings) { s.StorePath = "" }, ErrInvalidInput},
		{"empty base url", func(s *Settings) { s.HHBaseURL = "" }, ErrInvalidInput},
		{"zero rate", func(s *Settings) { s.RequestsPerSecond = 0 }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			assert.True(t, errors.Is(err, tt.target))
		})
	}
}
