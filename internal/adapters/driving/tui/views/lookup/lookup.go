// Package lookup provides the main lookup view for the TUI.
package lookup

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// ErrNoLookupService is returned when a lookup runs without a service.
var ErrNoLookupService = errors.New("lookup service not available")

// View is the lookup view with input, results list and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.LookupInput
	list      *list.ResultList
	statusbar *status.Bar

	lookupService driving.LookupService
	ctx           context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing, false = navigating results
}

// NewView creates a new lookup view.
func NewView(s *styles.Styles, km *keymap.KeyMap, lookupService driving.LookupService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewLookupInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		lookupService: lookupService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		focusInput:    true,
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

// Update handles messages for the lookup view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.LookupCompleted:
		v.handleLookupCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.focusInput {
		switch {
		case keymap.Matches(msg.String(), v.keymap.Lookup):
			query := v.input.Value()
			if query == "" {
				return v, nil
			}
			v.statusbar.SetState(status.StateSearching)
			return v, v.performLookup(query, v.input.Mode())
		case keymap.Matches(msg.String(), v.keymap.Mode):
			v.input.ToggleMode()
			return v, nil
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Open):
		if result := v.list.SelectedResult(); result != nil {
			opened := *result
			return v, func() tea.Msg { return messages.ResultOpened{Result: opened} }
		}
		return v, nil
	case keymap.Matches(msg.String(), v.keymap.NewLookup),
		keymap.Matches(msg.String(), v.keymap.Back):
		v.focusInput = true
		return v, v.input.Focus()
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// performLookup runs the lookup off the update loop.
func (v *View) performLookup(query string, mode messages.LookupMode) tea.Cmd {
	svc := v.lookupService
	ctx := v.ctx

	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoLookupService}
		}

		var (
			results []domain.LookupResult
			err     error
		)
		switch mode {
		case messages.ModeScan:
			hint, hintErr := svc.ReadingHintAt(ctx, query, 0)
			if hintErr != nil {
				logger.Warn("Reading hint failed: %v", hintErr)
			}
			results, err = svc.LookupWordWithSubstrings(ctx, query, 0, domain.LookupOptions{ReadingHint: hint})
		default:
			results, err = svc.LookupWord(ctx, query, domain.LookupOptions{})
		}

		return messages.LookupCompleted{Query: query, Mode: mode, Results: results, Err: err}
	}
}

func (v *View) handleLookupCompleted(msg messages.LookupCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetResults(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Results))
	v.statusbar.SetMessage("")

	if len(msg.Results) > 0 {
		v.focusInput = false
		v.input.Blur()
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the lookup view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("yomu"), "", v.input.View(), "")

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
	v.list.SetDimensions(width, height-10) // header, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current input.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the input.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Mode returns the current lookup mode.
func (v *View) Mode() messages.LookupMode {
	return v.input.Mode()
}

// Results returns the current results.
func (v *View) Results() []domain.LookupResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// StatusState returns the status bar state.
func (v *View) StatusState() status.State {
	return v.statusbar.State()
}
