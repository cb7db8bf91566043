package hh

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/logger"
)

const fullItem = `{
	"id": "93353083",
	"premium": false,
	"name": "Тестировщик комфорта квартир",
	"area": {"id": "26", "name": "Воронеж", "url": "https://api.hh.ru/areas/26"},
	"salary": {"from": 350000, "to": 450000, "currency": "RUR", "gross": false},
	"alternate_url": "https://hh.ru/vacancy/93353083",
	"employer": {"id": "3499705", "name": "Специализированный застройщик BM GROUP"},
	"snippet": {
		"requirement": "Занимать активную жизненную позицию",
		"responsibility": "Оценивать вид из окна"
	}
}`

func raw(content string) domain.RawListing {
	return domain.RawListing{Source: SourceType, Content: []byte(content)}
}

func TestNormaliser_SourceType(t *testing.T) {
	assert.Equal(t, "hh", New().SourceType())
}

func TestNormalise_FullItem(t *testing.T) {
	listing, err := New().Normalise(context.Background(), raw(fullItem))
	require.NoError(t, err)

	assert.Equal(t, "Тестировщик комфорта квартир", listing.Name)
	assert.Equal(t, "https://hh.ru/vacancy/93353083", listing.URL)
	assert.Equal(t, "Занимать активную жизненную позицию. Оценивать вид из окна", listing.Description)
	assert.Equal(t, 400000.0, listing.Salary)
	assert.Equal(t, "Специализированный застройщик BM GROUP", listing.CompanyName)
}

func TestNormalise_EmptyObject(t *testing.T) {
	listing, err := New().Normalise(context.Background(), raw(`{}`))
	require.NoError(t, err)

	assert.Equal(t, domain.Listing{
		Name:        "Not specified",
		URL:         "",
		Description: "No description",
		Salary:      0.0,
		CompanyName: "Unknown",
	}, listing)
}

func TestNormalise_Description(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		expected string
	}{
		{"requirement only", `{"snippet": {"requirement": "Go"}}`, "Go"},
		{"responsibility only", `{"snippet": {"responsibility": "Code"}}`, "Code"},
		{"both", `{"snippet": {"requirement": "Go", "responsibility": "Code"}}`, "Go. Code"},
		{"empty strings", `{"snippet": {"requirement": "", "responsibility": ""}}`, "No description"},
		{"nulls", `{"snippet": {"requirement": null, "responsibility": null}}`, "No description"},
		{"empty snippet", `{"snippet": {}}`, "No description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := New().Normalise(context.Background(), raw(tt.item))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, listing.Description)
		})
	}
}

func TestNormalise_NullScalarsUseDefaults(t *testing.T) {
	listing, err := New().Normalise(context.Background(),
		raw(`{"name": null, "alternate_url": null, "salary": null, "employer": {"name": null}}`))
	require.NoError(t, err)

	assert.Equal(t, domain.NameNotSpecified, listing.Name)
	assert.Equal(t, "", listing.URL)
	assert.Equal(t, 0.0, listing.Salary)
	assert.Equal(t, domain.CompanyUnknown, listing.CompanyName)
}

func TestNormalise_Malformed(t *testing.T) {
	tests := []struct {
		name string
		item string
	}{
		{"not json", `{"name": `},
		{"array", `[1, 2]`},
		{"null record", `null`},
		{"numeric name", `{"name": 42}`},
		{"null employer", `{"employer": null}`},
		{"string employer", `{"employer": "Acme"}`},
		{"null snippet", `{"snippet": null}`},
		{"numeric requirement", `{"snippet": {"requirement": 1}}`},
		{"string salary", `{"salary": "100"}`},
		{"string salary bound", `{"salary": {"from": "100"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Normalise(context.Background(), raw(tt.item))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedRecord))
		})
	}
}

func TestNormaliseMany_SkipsMalformed(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	raws := []domain.RawListing{
		raw(fullItem),
		raw(`{"employer": null}`),
		raw(`{}`),
		raw(`"just a string"`),
	}

	batch := New().NormaliseMany(context.Background(), raws)

	require.Len(t, batch.Listings, 2)
	assert.Equal(t, "Тестировщик комфорта квартир", batch.Listings[0].Name)
	assert.Equal(t, domain.NameNotSpecified, batch.Listings[1].Name)

	require.Len(t, batch.Failures, 2)
	assert.Equal(t, 1, batch.Failures[0].Index)
	assert.Equal(t, 3, batch.Failures[1].Index)
	assert.Contains(t, buf.String(), "[WARN] skipping record 1")
}

func TestNormaliseMany_Empty(t *testing.T) {
	batch := New().NormaliseMany(context.Background(), nil)
	assert.Empty(t, batch.Listings)
	assert.Empty(t, batch.Failures)
}

func TestNormalise_RoundTripThroughStoreShape(t *testing.T) {
	listing, err := New().Normalise(context.Background(), raw(fullItem))
	require.NoError(t, err)

	data, err := json.Marshal(listing)
	require.NoError(t, err)

	var back domain.Listing
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, listing, back)
	assert.True(t, listing.Equal(back))
}
