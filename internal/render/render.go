package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

// DescriptionLimit is the number of characters of a description shown in listings.
const DescriptionLimit = 100

// SalaryNotSpecified is shown in place of a zero salary.
const SalaryNotSpecified = "Salary not specified"

// Currency is appended to every formatted salary.
const Currency = "RUB"

// Separator divides entries in long-form output.
var Separator = strings.Repeat("-", 30)

// Salary formats a salary with thousands separators, or SalaryNotSpecified
// when it is zero.
func Salary(salary float64) string {
	if salary == 0 {
		return SalaryNotSpecified
	}
	return humanize.CommafWithDigits(salary, 2) + " " + Currency
}

// PlainText strips snippet markup such as <highlighttext> and decodes
// entities. Text that fails to parse is returned unchanged.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}

// Truncate returns the first limit characters of s.
func Truncate(s string, limit int) string {
	if limit < 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

// Description returns the plain-text description cut to DescriptionLimit.
func Description(description string) string {
	return Truncate(PlainText(description), DescriptionLimit)
}

// Summary is the one-line form used in pick lists:
// "name (company) - url".
func Summary(l domain.Listing) string {
	return fmt.Sprintf("%s (%s) - %s", l.Name, l.CompanyName, l.URL)
}

// Listing writes the numbered long form of l. Numbering starts at 1.
func Listing(w io.Writer, n int, l domain.Listing) {
	fmt.Fprintf(w, "%d. Name: %s\n", n, l.Name)
	fmt.Fprintf(w, "Company: %s\n", l.CompanyName)
	fmt.Fprintf(w, "Salary: %s\n", Salary(l.Salary))
	fmt.Fprintf(w, "URL: %s\n", l.URL)
	fmt.Fprintf(w, "Description: %s\n", Description(l.Description))
}

// Listings writes every listing in long form, separated by Separator lines.
func Listings(w io.Writer, listings []domain.Listing) {
	for i, l := range listings {
		Listing(w, i+1, l)
		fmt.Fprintln(w, Separator)
	}
}
