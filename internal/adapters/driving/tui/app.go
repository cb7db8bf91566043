package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/views/saved"
	"github.com/custodia-labs/tavern/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/tavern/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles

	menuView   *menu.View
	searchView *search.View
	savedView  *saved.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// changes is the store watch subscription, nil until Init.
	changes <-chan struct{}

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		searchView:  search.NewView(s, km, ports.Listings),
		savedView:   saved.NewView(s, km, ports.Listings),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.savedView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("tavern"),
		a.watchStore(),
	)
}

// watchStore subscribes to store changes when a notifier is available.
func (a *App) watchStore() tea.Cmd {
	if a.ports.Changes == nil {
		return nil
	}
	ch, err := a.ports.Changes.Watch(a.ctx)
	if err != nil {
		logger.Warn("store watch unavailable: %v", err)
		return nil
	}
	a.changes = ch
	return waitForChange(ch)
}

// waitForChange emits StoreChanged on the next change. It returns nil once
// the channel is closed.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return messages.StoreChanged{}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
		case messages.ViewSaved:
			a.savedView, cmd = a.savedView.Update(msg)
			a.err = a.savedView.Err()
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.SavedLoaded, messages.ListingDeleted:
		a.savedView, cmd = a.savedView.Update(msg)
		a.err = a.savedView.Err()
		return a, cmd

	case messages.StoreChanged:
		// Keep listening, and refresh the saved view if it is showing.
		var next tea.Cmd
		if a.changes != nil {
			next = waitForChange(a.changes)
		}
		if a.currentView == messages.ViewSaved {
			a.savedView, cmd = a.savedView.Update(msg)
		}
		return a, tea.Batch(cmd, next)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewSaved:
			a.savedView.Reset()
			return a, a.savedView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewSaved:
			a.savedView, cmd = a.savedView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewSaved:
		a.savedView, cmd = a.savedView.Update(msg)
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewSaved:
		return a.savedView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  1-4         Jump to option
  enter       Select option

Search:
  (type)      Enter keywords
  enter       Search hh.ru and save the results
  n           New search
  j/k, ↑/↓    Navigate results

Saved:
  /           Filter by name, description or company
  s           Cycle salary sort
  d           Delete selected (y/n to confirm)
  j/k, ↑/↓    Navigate

` + a.styles.Help.Render("[esc] back to menu")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.savedView.SetDimensions(width, height)
}
