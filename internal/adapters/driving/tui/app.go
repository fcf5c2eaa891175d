package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/views/lookup"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	keymap *keymap.KeyMap

	lookupView *lookup.View
	detailView *detail.View

	currentView messages.ViewType
	width       int
	height      int
	ready       bool
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
		keymap:      km,
		lookupView:  lookup.NewView(s, km, ports.Lookup),
		detailView:  detail.NewView(s, km),
		currentView: messages.ViewLookup,
	}, nil
}

// WithContext sets the context used for lookups.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.lookupView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("yomu"),
		a.lookupView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}

	case messages.ResultOpened:
		a.detailView.SetResult(msg.Result)
		a.currentView = messages.ViewDetail
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.LookupCompleted, messages.ErrorOccurred:
		// Lookups always belong to the lookup view, whichever is showing.
		a.lookupView, cmd = a.lookupView.Update(msg)
		return a, cmd
	}

	switch a.currentView {
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	default:
		a.lookupView, cmd = a.lookupView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.currentView == messages.ViewDetail {
		return a.detailView.View()
	}
	return a.lookupView.View()
}

// SetDimensions sizes every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.lookupView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// LookupView returns the lookup view.
func (a *App) LookupView() *lookup.View {
	return a.lookupView
}

// DetailView returns the detail view.
func (a *App) DetailView() *detail.View {
	return a.detailView
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}
