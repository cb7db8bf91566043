// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/render"
)

// linesPerListing is the height of one rendered entry.
const linesPerListing = 3

// ListingList displays listings in a navigable list.
type ListingList struct {
	listings []domain.Listing
	selected int
	styles   *styles.Styles
	title    string
	empty    string
	width    int
	height   int
}

// NewListingList creates a new listing list component.
func NewListingList(s *styles.Styles, title, empty string) *ListingList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ListingList{
		styles: s,
		title:  title,
		empty:  empty,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *ListingList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ListingList) Update(msg tea.Msg) (*ListingList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *ListingList) View() string {
	if len(l.listings) == 0 {
		return l.styles.Muted.Render(l.empty)
	}

	lines := make([]string, 0, len(l.listings)+2)

	header := l.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", l.title, len(l.listings)))
	lines = append(lines, header, "")

	visibleCount := (l.height - 2) / linesPerListing
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.listings) {
		end = len(l.listings)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderListing(i, l.listings[i]))
	}

	return strings.Join(lines, "\n")
}

// renderListing formats one entry as title, company/salary and preview lines.
func (l *ListingList) renderListing(index int, listing domain.Listing) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	maxTitle := l.width - 8
	if maxTitle < 10 {
		maxTitle = 10
	}
	title := fmt.Sprintf("%s%d. %s", indicator, index+1, render.Truncate(listing.Name, maxTitle))

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(title)
	} else {
		titleLine = l.styles.Normal.Render(title)
	}

	meta := "    " + l.styles.Subtitle.Render(listing.CompanyName) + "  " +
		l.styles.Salary.Render(render.Salary(listing.Salary))

	maxPreview := l.width - 6
	if maxPreview < 20 {
		maxPreview = 20
	}
	if maxPreview > render.DescriptionLimit {
		maxPreview = render.DescriptionLimit
	}
	preview := render.Truncate(render.PlainText(listing.Description), maxPreview)
	previewLine := l.styles.Muted.Render("    " + preview)

	return titleLine + "\n" + meta + "\n" + previewLine
}

// SetListings replaces the list contents, keeping the selection in range.
func (l *ListingList) SetListings(listings []domain.Listing) {
	l.listings = listings
	if l.selected >= len(listings) {
		l.selected = len(listings) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Listings returns the current listings.
func (l *ListingList) Listings() []domain.Listing {
	return l.listings
}

// Selected returns the index of the selected listing.
func (l *ListingList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ListingList) SetSelected(index int) {
	if index >= 0 && index < len(l.listings) {
		l.selected = index
	}
}

// SelectedListing returns the currently selected listing, or nil if none.
func (l *ListingList) SelectedListing() *domain.Listing {
	if len(l.listings) == 0 || l.selected < 0 || l.selected >= len(l.listings) {
		return nil
	}
	return &l.listings[l.selected]
}

// MoveUp moves selection up.
func (l *ListingList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ListingList) MoveDown() {
	if l.selected < len(l.listings)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *ListingList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of listings.
func (l *ListingList) Count() int {
	return len(l.listings)
}

// IsEmpty returns whether the list is empty.
func (l *ListingList) IsEmpty() bool {
	return len(l.listings) == 0
}
