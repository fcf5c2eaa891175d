// Package styles holds the TUI palette and the lipgloss styles built from it.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette assigns a colour to each part of a dictionary entry. Colours
// adapt to light and dark terminal backgrounds.
type Palette struct {
	Headword     lipgloss.AdaptiveColor
	Kana         lipgloss.AdaptiveColor
	Text         lipgloss.AdaptiveColor
	Dim          lipgloss.AdaptiveColor
	PartOfSpeech lipgloss.AdaptiveColor
	Chain        lipgloss.AdaptiveColor
	Alert        lipgloss.AdaptiveColor
	Frame        lipgloss.AdaptiveColor
	Bar          lipgloss.AdaptiveColor
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() *Palette {
	return &Palette{
		Headword:     lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"},
		Kana:         lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#67E8F9"},
		Text:         lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"},
		Dim:          lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#8B8FA3"},
		PartOfSpeech: lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#86EFAC"},
		Chain:        lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FDE68A"},
		Alert:        lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"},
		Frame:        lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3F3F55"},
		Bar:          lipgloss.AdaptiveColor{Light: "#EDE9FE", Dark: "#1E1B2E"},
	}
}

// Styles are the rendered styles shared by every view.
type Styles struct {
	palette *Palette

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Term       lipgloss.Style
	Reading    lipgloss.Style
	Tags       lipgloss.Style
	Inflection lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
}

// NewStyles builds styles from p. A nil palette selects DefaultPalette.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	text := lipgloss.NewStyle().Foreground(p.Text)
	headword := lipgloss.NewStyle().Bold(true).Foreground(p.Headword)
	dim := lipgloss.NewStyle().Foreground(p.Dim)

	return &Styles{
		palette: p,

		Title:      headword,
		Subtitle:   lipgloss.NewStyle().Bold(true).Foreground(p.Kana),
		Normal:     text,
		Muted:      dim,
		Selected:   text.Bold(true).Background(p.Frame),
		Error:      lipgloss.NewStyle().Foreground(p.Alert),
		Term:       headword,
		Reading:    lipgloss.NewStyle().Foreground(p.Kana),
		Tags:       lipgloss.NewStyle().Foreground(p.PartOfSpeech),
		Inflection: lipgloss.NewStyle().Italic(true).Foreground(p.Chain),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Frame).
			Padding(0, 1),
		StatusBar:  dim.Background(p.Bar).Padding(0, 1),
		StatusMode: headword.Reverse(true).Padding(0, 1),
	}
}

// DefaultStyles returns styles built from the default palette.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Palette returns the palette the styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}

// Headword joins a term and its reading as 食べる【たべる】. The reading is
// left out when empty or identical to the term.
func Headword(term, reading string) string {
	if reading == "" || reading == term {
		return term
	}
	return term + "【" + reading + "】"
}

// Chain renders an inflection path as "from ← reason ← reason". An empty
// from yields a chain that starts with the arrow.
func Chain(from string, path []string) string {
	if len(path) == 0 {
		return from
	}
	return strings.TrimSpace(from + " ← " + strings.Join(path, " ← "))
}
