// Package detail provides the full-definition view for one result.
package detail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// View shows every definition of a result, scrollable.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	result       *domain.LookupResult
	lines        []string
	scrollOffset int
	width        int
	height       int
}

// NewView creates a new detail view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateDetail)

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: bar,
		width:     80,
		height:    24,
	}
}

// SetResult shows result and scrolls to the top.
func (v *View) SetResult(result domain.LookupResult) {
	v.result = &result
	v.scrollOffset = 0
	v.render()
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch key := msg.String(); {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewLookup} }
	case keymap.Matches(key, v.keymap.Up):
		v.scroll(-1)
	case keymap.Matches(key, v.keymap.Down):
		v.scroll(1)
	case key == "pgup" || key == "ctrl+u":
		v.scroll(-v.visibleLines())
	case key == "pgdown" || key == "ctrl+d":
		v.scroll(v.visibleLines())
	}
	return v, nil
}

func (v *View) scroll(delta int) {
	v.scrollOffset = min(max(v.scrollOffset+delta, 0), v.maxScrollOffset())
}

func (v *View) visibleLines() int {
	return max(v.height-4, 1) // status bar and spacing
}

func (v *View) maxScrollOffset() int {
	return max(len(v.lines)-v.visibleLines(), 0)
}

// render lays out the result as wrapped lines.
func (v *View) render() {
	v.lines = nil
	if v.result == nil {
		return
	}
	r := v.result

	head := v.styles.Term.Render(styles.Headword(r.DictionaryForm, r.Reading)) +
		v.styles.Muted.Render(fmt.Sprintf("  score %d", r.Score))
	v.lines = append(v.lines, head, "")

	if len(r.InflectionPath) > 0 {
		v.lines = append(v.lines, v.styles.Inflection.Render(styles.Chain(r.SelectedWord, r.InflectionPath)))
	}
	if len(r.PartOfSpeech) > 0 {
		v.lines = append(v.lines, v.styles.Tags.Render(strings.Join(r.PartOfSpeech, ", ")))
	}
	v.lines = append(v.lines, "")

	wrap := lipgloss.NewStyle().Width(max(v.width-4, 20))
	for i, def := range r.Definitions {
		text := wrap.Render(fmt.Sprintf("%d. %s", i+1, def))
		v.lines = append(v.lines, strings.Split(text, "\n")...)
	}
}

// View renders the detail view.
func (v *View) View() string {
	if v.result == nil {
		return v.styles.Muted.Render("Nothing selected")
	}

	end := min(v.scrollOffset+v.visibleLines(), len(v.lines))
	body := strings.Join(v.lines[v.scrollOffset:end], "\n")

	return lipgloss.JoinVertical(lipgloss.Left, body, "", v.statusbar.View())
}

// SetDimensions sets the view dimensions and re-wraps the content.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)
	v.render()
	v.scroll(0)
}

// Result returns the displayed result, or nil.
func (v *View) Result() *domain.LookupResult {
	return v.result
}

// ScrollOffset returns the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}
