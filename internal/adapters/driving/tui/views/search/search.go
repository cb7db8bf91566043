// Package search provides the hh.ru search view for the TUI.
package search

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tavern/internal/core/domain"
	"github.com/custodia-labs/tavern/internal/core/ports/driving"
)

// View searches hh.ru, saves what it finds and lists the results.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.TextInput
	list      *list.ListingList
	statusbar *status.Bar

	listings driving.ListingService
	ctx      context.Context

	report     *driving.SearchReport
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing a query, false = navigating results
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, listings driving.ListingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       list.NewListingList(s, "Results", "No results yet"),
		statusbar:  status.NewBar(s, km),
		listings:   listings,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			query := v.input.Value()
			if query == "" {
				return v, nil
			}
			v.statusbar.SetState(status.StateSearching)
			v.statusbar.SetMessage("")
			v.focusInput = false
			v.input.Blur()
			return v, v.performSearch(query)
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
	}
	return v, nil
}

// performSearch runs the search and save off the update loop.
func (v *View) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		if v.listings == nil {
			return messages.ErrorOccurred{Err: ErrNoListingService}
		}
		report, err := v.listings.SearchAndSave(v.ctx, query)
		return messages.SearchCompleted{Report: report, Err: err}
	}
}

// handleSearchCompleted shows the outcome of a search.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.report = msg.Report
	v.list.SetListings(msg.Report.Listings)
	v.list.SetSelected(0)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetCount(msg.Report.Found())
	v.statusbar.SetMessage(Summary(msg.Report))
	v.focusInput = false
	v.input.Blur()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// Summary describes a search report in one line. The "no results" and
// "added" forms are mutually exclusive.
func Summary(report *driving.SearchReport) string {
	var s string
	if report.Found() == 0 {
		s = fmt.Sprintf("No vacancies found for %q", report.Query)
	} else {
		s = fmt.Sprintf("Found %d, added %d, already saved %d", report.Found(), report.Added, report.Existing)
	}
	if report.Skipped > 0 {
		s += fmt.Sprintf(", skipped %d", report.Skipped)
	}
	return s
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Tavern · Search hh.ru"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // header, input and status
	v.statusbar.SetWidth(width)
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the listings from the last search.
func (v *View) Results() []domain.Listing {
	return v.list.Listings()
}

// Report returns the last search report, or nil before the first search.
func (v *View) Report() *driving.SearchReport {
	return v.report
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset returns the view to an empty query.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetListings(nil)
	v.report = nil
	v.err = nil
	v.statusbar.Clear()
}
