// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/styles"
)

// LookupInput wraps a bubbles textinput labelled with the lookup mode.
type LookupInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	mode      messages.LookupMode
	width     int
}

// NewLookupInput creates a new lookup input component.
func NewLookupInput(s *styles.Styles) *LookupInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "食べなかった"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &LookupInput{
		textinput: ti,
		styles:    s,
		mode:      messages.ModeWord,
		width:     50,
	}
}

// Init initialises the input.
func (l *LookupInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (l *LookupInput) Update(msg tea.Msg) (*LookupInput, tea.Cmd) {
	var cmd tea.Cmd
	l.textinput, cmd = l.textinput.Update(msg)
	return l, cmd
}

// View renders the input with its mode label.
func (l *LookupInput) View() string {
	label := l.styles.Title.Render(l.mode.String() + ": ")
	field := l.styles.InputField.Render(l.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (l *LookupInput) Value() string {
	return l.textinput.Value()
}

// SetValue sets the input value.
func (l *LookupInput) SetValue(value string) {
	l.textinput.SetValue(value)
}

// Mode returns the current lookup mode.
func (l *LookupInput) Mode() messages.LookupMode {
	return l.mode
}

// ToggleMode switches between word and scan lookups.
func (l *LookupInput) ToggleMode() {
	l.mode = l.mode.Next()
}

// Focus sets focus on the input.
func (l *LookupInput) Focus() tea.Cmd {
	return l.textinput.Focus()
}

// Blur removes focus from the input.
func (l *LookupInput) Blur() {
	l.textinput.Blur()
}

// Focused returns whether the input is focused.
func (l *LookupInput) Focused() bool {
	return l.textinput.Focused()
}

// SetWidth sets the width of the input.
func (l *LookupInput) SetWidth(width int) {
	l.width = width
	// Account for label and padding
	l.textinput.Width = max(width-12, 20)
}

// Width returns the current width.
func (l *LookupInput) Width() int {
	return l.width
}
