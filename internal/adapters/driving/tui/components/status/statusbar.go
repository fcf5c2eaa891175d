// Package status renders the one-line bar at the foot of each TUI view.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/styles"
)

// State is the lookup phase shown in the bar's mode badge.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateResults   State = "results"
	StateDetail    State = "detail"
)

// Bar shows a mode badge, a short summary and the key hints that fit.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	resultCount int
	width       int
}

// NewBar creates a bar in the ready state.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: 80}
}

// View renders the bar as a single line of the configured width. Hints
// are dropped from the end until the line fits.
func (b *Bar) View() string {
	inner := max(b.width-b.styles.StatusBar.GetHorizontalFrameSize(), 0)

	left := b.badge()
	if summary := b.summary(); summary != "" {
		left += " " + summary
	}

	var right string
	hints := b.hints()
	for n := len(hints); n > 0; n-- {
		right = b.styles.Muted.Render(strings.Join(hints[:n], " · "))
		if lipgloss.Width(left)+1+lipgloss.Width(right) <= inner {
			break
		}
		right = ""
	}

	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return b.styles.StatusBar.Width(b.width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) badge() string {
	label := "READY"
	switch b.state {
	case StateSearching:
		label = "LOOKING UP"
	case StateError:
		return b.styles.StatusMode.Foreground(b.styles.Palette().Alert).Render("ERROR")
	case StateResults:
		if b.resultCount == 0 {
			label = "NO MATCH"
		} else {
			label = "RESULTS"
		}
	case StateDetail:
		label = "ENTRY"
	}
	return b.styles.StatusMode.Render(label)
}

func (b *Bar) summary() string {
	switch {
	case b.state == StateError && b.message != "":
		return b.styles.Error.Render(b.message)
	case b.resultCount == 1 && b.state != StateDetail:
		return b.styles.Normal.Render("1 result")
	case b.resultCount > 1 && b.state != StateDetail:
		return b.styles.Normal.Render(fmt.Sprintf("%d results", b.resultCount))
	case b.message != "":
		return b.message
	}
	return ""
}

func (b *Bar) hints() []string {
	var bindings []key.Binding
	switch {
	case b.state == StateDetail:
		bindings = b.keymap.DetailHelp()
	case b.state == StateResults && b.resultCount > 0:
		bindings = b.keymap.ResultsHelp()
	default:
		bindings = b.keymap.InputHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return hints
}

// SetState changes the mode badge.
func (b *Bar) SetState(state State) { b.state = state }

// State returns the current state.
func (b *Bar) State() State { return b.state }

// SetMessage sets the summary text. In the error state it is the error.
func (b *Bar) SetMessage(message string) { b.message = message }

// Message returns the summary text.
func (b *Bar) Message() string { return b.message }

// SetResultCount sets the number of results reported in the summary.
func (b *Bar) SetResultCount(count int) { b.resultCount = count }

// SetWidth sets the total rendered width, frame included.
func (b *Bar) SetWidth(width int) { b.width = width }

// Clear returns the bar to the ready state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.resultCount = 0
}
