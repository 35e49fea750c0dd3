package components

import (
	"strings"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/tui/styles"
)

// Sidebar lists the record collections and tracks the active one.
type Sidebar struct {
	cursor  int
	focused bool
	width   int
	height  int
}

// NewSidebar creates a sidebar with the first collection selected
func NewSidebar() Sidebar {
	return Sidebar{focused: true}
}

// SetSize updates the component dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused sets whether the sidebar has keyboard focus
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// Focused returns whether the sidebar has keyboard focus
func (s Sidebar) Focused() bool {
	return s.focused
}

// Selected returns the currently selected resource
func (s Sidebar) Selected() domain.Resource {
	return domain.Resources[s.cursor]
}

// MoveUp moves the cursor up one entry
func (s *Sidebar) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down one entry
func (s *Sidebar) MoveDown() {
	if s.cursor < len(domain.Resources)-1 {
		s.cursor++
	}
}

// View renders the sidebar
func (s Sidebar) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Fleetdesk"))
	b.WriteString("\n\n")

	for i, r := range domain.Resources {
		label := styles.Truncate(r.Title(), s.width-4)
		if i == s.cursor {
			if s.focused {
				b.WriteString(styles.SelectedItemStyle.Render(label))
			} else {
				b.WriteString(styles.AccentStyle.Padding(0, 1).Render(label))
			}
		} else {
			b.WriteString(styles.NormalItemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	border := styles.InactiveBorder
	if s.focused {
		border = styles.ActiveBorder
	}
	return border.Width(s.width).Height(s.height).Render(b.String())
}
