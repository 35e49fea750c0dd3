package components

import (
	"strings"

	"github.com/fleetdesk/fleetdesk/internal/tui/styles"
)

// StatusBar shows transient success and error notices plus the key
// hints for the focused pane.
type StatusBar struct {
	message string
	isError bool
	hints   string
	width   int
}

// SetSize updates the component dimensions
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetMessage sets a transient notice
func (s *StatusBar) SetMessage(message string, isError bool) {
	s.message = message
	s.isError = isError
}

// Message returns the current notice text
func (s StatusBar) Message() string {
	return s.message
}

// Clear removes the current notice
func (s *StatusBar) Clear() {
	s.message = ""
	s.isError = false
}

// SetHints sets the key hint text shown when no notice is active
func (s *StatusBar) SetHints(hints string) {
	s.hints = hints
}

// View renders the status bar
func (s StatusBar) View() string {
	if s.message != "" {
		style := styles.SuccessStyle
		if s.isError {
			style = styles.ErrorStyle
		}
		return style.Render(" " + styles.Truncate(s.message, s.width-2))
	}
	if s.hints != "" {
		return styles.DimStyle.Render(" " + styles.Truncate(s.hints, s.width-2))
	}
	return strings.Repeat(" ", max(s.width, 0))
}
