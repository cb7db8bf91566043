// Package saved provides the saved-vacancies view for the TUI.
package saved

import (
	"context"
	"errors"
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

// ErrNoListingService is returned when the view has no listing service.
var ErrNoListingService = errors.New("listing service is required")

// SortOrder is the salary ordering applied to the list.
type SortOrder int

const (
	// SortNone keeps the stored order.
	SortNone SortOrder = iota
	// SortSalaryDesc shows the highest salary first.
	SortSalaryDesc
	// SortSalaryAsc shows the lowest salary first.
	SortSalaryAsc
)

// String returns a short label for the order.
func (o SortOrder) String() string {
	switch o {
	case SortSalaryDesc:
		return "salary, highest first"
	case SortSalaryAsc:
		return "salary, lowest first"
	default:
		return "stored order"
	}
}

// next cycles none -> desc -> asc -> none.
func (o SortOrder) next() SortOrder {
	return (o + 1) % 3
}

// View browses, filters and deletes saved listings.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	filter    *input.TextInput
	list      *list.ListingList
	statusbar *status.Bar

	listings driving.ListingService
	ctx      context.Context

	stored  []domain.Listing // as returned by the service, before sorting
	order   SortOrder
	pending *domain.Listing // awaiting delete confirmation
	width   int
	height  int
	ready   bool
	err     error
}

// NewView creates a new saved view.
func NewView(s *styles.Styles, km *keymap.KeyMap, listings driving.ListingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		filter:    input.NewFilterInput(s),
		list:      list.NewListingList(s, "Saved", "No saved vacancies yet"),
		statusbar: status.NewBar(s, km),
		listings:  listings,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the saved listings.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	return v.load()
}

// Update handles messages for the saved view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SavedLoaded:
		v.handleSavedLoaded(msg)
		return v, nil

	case messages.ListingDeleted:
		return v, v.handleListingDeleted(msg)

	case messages.StoreChanged:
		return v, v.load()

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.pending != nil {
		return v, v.handleConfirmKey(msg)
	}

	if v.filter.Focused() {
		return v, v.handleFilterKey(msg)
	}

	switch {
	case msg.Type == tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(msg.String(), v.keymap.Filter):
		return v, v.filter.Focus()
	case keymap.Matches(msg.String(), v.keymap.SortSalary):
		v.order = v.order.next()
		v.applyOrder()
		v.statusbar.SetMessage("Sorted by " + v.order.String())
	case keymap.Matches(msg.String(), v.keymap.Delete):
		v.askDelete()
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
	}
	return v, nil
}

// handleFilterKey edits the filter and reloads while it changes.
func (v *View) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
		v.filter.Blur()
		return nil
	}

	before := v.filter.Value()
	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	if v.filter.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, v.load())
}

func (v *View) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	target := *v.pending
	switch {
	case keymap.Matches(msg.String(), v.keymap.Confirm):
		v.pending = nil
		v.statusbar.SetState(status.StateLoading)
		return v.performDelete(target)
	case keymap.Matches(msg.String(), v.keymap.Deny):
		v.pending = nil
		v.statusbar.SetState(status.StateSaved)
		v.statusbar.SetMessage("Deletion cancelled")
	}
	return nil
}

func (v *View) askDelete() {
	selected := v.list.SelectedListing()
	if selected == nil {
		return
	}
	target := *selected
	v.pending = &target
	v.statusbar.SetState(status.StateConfirm)
	v.statusbar.SetMessage(fmt.Sprintf("Delete %q?", target.Name))
}

// load fetches listings matching the current filter off the update loop.
func (v *View) load() tea.Cmd {
	filter := v.filter.Value()
	return func() tea.Msg {
		if v.listings == nil {
			return messages.ErrorOccurred{Err: ErrNoListingService}
		}
		listings, err := v.listings.Saved(v.ctx, filter)
		return messages.SavedLoaded{Filter: filter, Listings: listings, Err: err}
	}
}

func (v *View) performDelete(target domain.Listing) tea.Cmd {
	return func() tea.Msg {
		if v.listings == nil {
			return messages.ErrorOccurred{Err: ErrNoListingService}
		}
		removed, err := v.listings.Delete(v.ctx, target)
		return messages.ListingDeleted{Listing: target, Removed: removed, Err: err}
	}
}

func (v *View) handleSavedLoaded(msg messages.SavedLoaded) {
	// Results for an older filter are superseded by a later load.
	if msg.Filter != v.filter.Value() {
		return
	}
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.stored = msg.Listings
	v.applyOrder()
	if v.pending == nil {
		v.statusbar.SetState(status.StateSaved)
	}
	v.statusbar.SetCount(len(msg.Listings))
}

func (v *View) handleListingDeleted(msg messages.ListingDeleted) tea.Cmd {
	if msg.Err != nil {
		v.setError(msg.Err)
		return nil
	}

	v.statusbar.SetState(status.StateSaved)
	if msg.Removed {
		v.statusbar.SetMessage(fmt.Sprintf("Deleted %q", msg.Listing.Name))
	} else {
		v.statusbar.SetMessage(fmt.Sprintf("%q was already gone", msg.Listing.Name))
	}
	return v.load()
}

// applyOrder shows the stored listings in the current order.
func (v *View) applyOrder() {
	shown := make([]domain.Listing, len(v.stored))
	copy(shown, v.stored)
	switch v.order {
	case SortSalaryDesc:
		domain.SortBySalary(shown, true)
	case SortSalaryAsc:
		domain.SortBySalary(shown, false)
	case SortNone:
	}
	v.list.SetListings(shown)
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the saved view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Tavern · Saved vacancies"), "")
	sections = append(sections, v.filter.View(), "")

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

	v.filter.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Filter returns the current filter text.
func (v *View) Filter() string {
	return v.filter.Value()
}

// FilterFocused returns whether the filter input has focus.
func (v *View) FilterFocused() bool {
	return v.filter.Focused()
}

// Listings returns the listings as currently shown.
func (v *View) Listings() []domain.Listing {
	return v.list.Listings()
}

// Order returns the current salary ordering.
func (v *View) Order() SortOrder {
	return v.order
}

// Pending returns the listing awaiting delete confirmation, if any.
func (v *View) Pending() *domain.Listing {
	return v.pending
}

// Status returns the status bar message.
func (v *View) Status() string {
	return v.statusbar.Message()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the filter, ordering and any pending confirmation.
func (v *View) Reset() {
	v.filter.Reset()
	v.filter.Blur()
	v.order = SortNone
	v.pending = nil
	v.err = nil
	v.stored = nil
	v.list.SetListings(nil)
	v.statusbar.Clear()
}
