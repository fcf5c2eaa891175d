package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

// styles holds the lipgloss styles for result output.
type styles struct {
	index   lipgloss.Style
	term    lipgloss.Style
	reading lipgloss.Style
	path    lipgloss.Style
	tags    lipgloss.Style
	gloss   lipgloss.Style
	muted   lipgloss.Style
}

// newStyles builds styles for w. Colours are only emitted when w is a
// colour-capable terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	width := terminalWidth(w)

	return styles{
		index:   r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		term:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		reading: r.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		path:    r.NewStyle().Italic(true).Foreground(lipgloss.Color("#F9E2AF")),
		tags:    r.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		gloss:   r.NewStyle().PaddingLeft(6).Width(max(width-2, 20)),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// terminalWidth returns the column count of w, or defaultWidth if w is
// not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
