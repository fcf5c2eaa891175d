// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// LookupMode selects which lookup the input runs.
type LookupMode int

const (
	// ModeWord looks up the whole input as one word.
	ModeWord LookupMode = iota
	// ModeScan finds the longest words at the start of the input.
	ModeScan
)

// String returns the label shown in the input prompt.
func (m LookupMode) String() string {
	if m == ModeScan {
		return "Scan"
	}
	return "Lookup"
}

// Next returns the other mode.
func (m LookupMode) Next() LookupMode {
	if m == ModeScan {
		return ModeWord
	}
	return ModeScan
}

// LookupCompleted carries lookup results back to the model.
type LookupCompleted struct {
	Query   string
	Mode    LookupMode
	Results []domain.LookupResult
	Err     error
}

// ResultOpened is sent when a result is opened in the detail view.
type ResultOpened struct {
	Result domain.LookupResult
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred reports an error to the active view.
type ErrorOccurred struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLookup is the input and results view.
	ViewLookup ViewType = iota
	// ViewDetail shows every definition of one result.
	ViewDetail
)
