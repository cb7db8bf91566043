package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

func TestSalary(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Salary not specified"},
		{50000, "50,000 RUB"},
		{1500.5, "1,500.5 RUB"},
		{123456.78, "123,456.78 RUB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Salary(tt.in))
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Опыт работы от 3 лет", "Опыт работы от 3 лет"},
		{"highlight", "Знание <highlighttext>Python</highlighttext> и SQL", "Знание Python и SQL"},
		{"entities", "R&amp;D team", "R&D team"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "Прод", Truncate("Продавец", 4))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("abc", -1))
}

func TestDescription_Limit(t *testing.T) {
	long := strings.Repeat("я", 150)
	assert.Equal(t, 100, len([]rune(Description(long))))
}

func TestListing(t *testing.T) {
	var buf bytes.Buffer
	Listing(&buf, 2, domain.Listing{
		Name:        "Go Developer",
		URL:         "https://hh.ru/vacancy/2",
		Description: "<highlighttext>Go</highlighttext> and gRPC",
		Salary:      0,
		CompanyName: "Gophers",
	})

	out := buf.String()
	assert.Contains(t, out, "2. Name: Go Developer\n")
	assert.Contains(t, out, "Company: Gophers\n")
	assert.Contains(t, out, "Salary: Salary not specified\n")
	assert.Contains(t, out, "URL: https://hh.ru/vacancy/2\n")
	assert.Contains(t, out, "Description: Go and gRPC\n")
}

func TestListings_Separators(t *testing.T) {
	var buf bytes.Buffer
	Listings(&buf, []domain.Listing{{Name: "a"}, {Name: "b"}})

	assert.Equal(t, 2, strings.Count(buf.String(), Separator))
	assert.Contains(t, buf.String(), "1. Name: a")
	assert.Contains(t, buf.String(), "2. Name: b")
}

func TestSummary(t *testing.T) {
	l := domain.Listing{Name: "n", CompanyName: "c", URL: "u"}
	assert.Equal(t, "n (c) - u", Summary(l))
}
