package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/listing"
	"github.com/fleetdesk/fleetdesk/internal/tui/styles"
)

// ListView renders one collection's paginated list: the search input,
// the active filters, the rows, and the pagination footer.
type ListView struct {
	resource  domain.Resource
	snapshot  listing.Snapshot[domain.Record]
	filters   map[string]string
	input     textinput.Model
	searching bool
	cursor    int
	offset    int
	focused   bool
	width     int
	height    int
	frame     int
}

// NewListView creates a list view for a collection
func NewListView(resource domain.Resource) ListView {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = 100
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.PlaceholderStyle = styles.DimStyle

	return ListView{resource: resource, input: ti}
}

// Resource returns the collection this view renders
func (v ListView) Resource() domain.Resource {
	return v.resource
}

// SetSize updates the component dimensions
func (v *ListView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.input.Width = width - 8
}

// SetFocused sets whether the list has keyboard focus
func (v *ListView) SetFocused(focused bool) {
	v.focused = focused
}

// SetFrame advances the spinner animation frame
func (v *ListView) SetFrame(frame int) {
	v.frame = frame
}

// SetSnapshot replaces the rendered controller state. The cursor is
// clamped so a shrinking result set cannot leave it out of range.
func (v *ListView) SetSnapshot(snap listing.Snapshot[domain.Record], filters map[string]string) {
	v.snapshot = snap
	v.filters = filters
	if v.cursor >= len(snap.Items) {
		v.cursor = len(snap.Items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.offset > v.cursor {
		v.offset = v.cursor
	}
}

// Snapshot returns the currently rendered state
func (v ListView) Snapshot() listing.Snapshot[domain.Record] {
	return v.snapshot
}

// Selected returns the record under the cursor, or nil
func (v ListView) Selected() domain.Record {
	if v.cursor < 0 || v.cursor >= len(v.snapshot.Items) {
		return nil
	}
	return v.snapshot.Items[v.cursor]
}

// StartSearch focuses the search input
func (v *ListView) StartSearch() {
	v.searching = true
	v.input.SetValue(v.snapshot.Search)
	v.input.Focus()
}

// StopSearch blurs the search input, keeping its value
func (v *ListView) StopSearch() {
	v.searching = false
	v.input.Blur()
}

// Searching returns whether the search input is focused
func (v ListView) Searching() bool {
	return v.searching
}

// SearchValue returns the current search input text
func (v ListView) SearchValue() string {
	return v.input.Value()
}

// ClearSearch empties the search input
func (v *ListView) ClearSearch() {
	v.input.SetValue("")
}

// UpdateSearch forwards a key event to the search input and reports
// whether its text changed.
func (v *ListView) UpdateSearch(msg tea.Msg) (bool, tea.Cmd) {
	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v.input.Value() != before, cmd
}

// MoveUp moves the cursor up one row
func (v *ListView) MoveUp() {
	if v.cursor > 0 {
		v.cursor--
	}
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
}

// MoveDown moves the cursor down one row. Returns true when the cursor
// ran into the end of the loaded rows, which is the signal to fetch the
// next page.
func (v *ListView) MoveDown() bool {
	if v.cursor < len(v.snapshot.Items)-1 {
		v.cursor++
		if v.cursor >= v.offset+v.visibleRows() {
			v.offset++
		}
		return false
	}
	return v.snapshot.Pagination.HasMore()
}

func (v ListView) visibleRows() int {
	rows := v.height - 6 // borders, search line, filter line, footer
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the list
func (v ListView) View() string {
	var b strings.Builder

	b.WriteString(v.headerView())
	b.WriteString("\n")

	if v.snapshot.Err != "" {
		b.WriteString(styles.ErrorBannerStyle.Render(styles.Truncate(v.snapshot.Err+"  (r to retry)", v.width-4)))
		b.WriteString("\n")
	}

	b.WriteString(v.rowsView())
	b.WriteString("\n")
	b.WriteString(v.footerView())

	border := styles.InactiveBorder
	if v.focused {
		border = styles.ActiveBorder
	}
	return border.Width(v.width).Height(v.height).Render(b.String())
}

func (v ListView) headerView() string {
	title := styles.TitleStyle.Render(v.resource.Title())

	var search string
	if v.searching {
		search = v.input.View()
	} else if s := strings.TrimSpace(v.snapshot.Search); s != "" {
		search = styles.AccentStyle.Render("/ " + s)
	} else {
		search = styles.DimStyle.Render("/ to search")
	}

	var filters []string
	for key, value := range v.filters {
		if value == "" || value == "all" {
			continue
		}
		filters = append(filters, fmt.Sprintf("%s=%s", key, value))
	}
	filterLine := styles.DimStyle.Render("f to filter")
	if len(filters) > 0 {
		filterLine = styles.AccentStyle.Render(strings.Join(filters, "  "))
	}

	return title + "\n" + search + "\n" + filterLine
}

func (v ListView) rowsView() string {
	snap := v.snapshot

	if snap.IsLoading && len(snap.Items) == 0 {
		spinner := styles.SpinnerFrames[v.frame%len(styles.SpinnerFrames)]
		return styles.SpinnerStyle.Render(spinner) + styles.DimStyle.Render(" loading "+string(v.resource)+"...")
	}

	if len(snap.Items) == 0 && snap.Err == "" {
		if strings.TrimSpace(snap.Search) != "" {
			return styles.DimStyle.Render("No matches for \"" + strings.TrimSpace(snap.Search) + "\"")
		}
		return styles.DimStyle.Render("No records")
	}

	var b strings.Builder
	rows := v.visibleRows()
	end := v.offset + rows
	if end > len(snap.Items) {
		end = len(snap.Items)
	}
	for i := v.offset; i < end; i++ {
		b.WriteString(v.rowView(snap.Items[i], i == v.cursor))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v ListView) rowView(record domain.Record, selected bool) string {
	status := styles.RenderStatus(record.GetStatus())
	title := styles.Truncate(record.GetTitle(), v.width/2)
	desc := styles.Truncate(record.GetDescription(), v.width-lipgloss.Width(title)-lipgloss.Width(status)-10)

	line := fmt.Sprintf("%s  %s  %s", title, styles.SubtitleStyle.Render(desc), status)
	if selected {
		return styles.SelectedItemStyle.Render("▸ ") + line
	}
	return styles.NormalItemStyle.Render("  ") + line
}

func (v ListView) footerView() string {
	snap := v.snapshot
	p := snap.Pagination

	if snap.IsLoadingMore {
		spinner := styles.SpinnerFrames[v.frame%len(styles.SpinnerFrames)]
		return styles.SpinnerStyle.Render(spinner) + styles.DimStyle.Render(" loading more...")
	}
	if snap.Refreshing {
		spinner := styles.SpinnerFrames[v.frame%len(styles.SpinnerFrames)]
		return styles.SpinnerStyle.Render(spinner) + styles.DimStyle.Render(" refreshing...")
	}
	if p.Total == 0 {
		return ""
	}

	footer := fmt.Sprintf("%d of %d", len(snap.Items), p.Total)
	if p.HasMore() {
		footer += "  ·  m for more"
	}
	return styles.DimStyle.Render(footer)
}
