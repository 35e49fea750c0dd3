package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/fleetdesk/fleetdesk/internal/search"
	"github.com/fleetdesk/fleetdesk/internal/tui/styles"
)

// Picker is a modal for choosing one reference record, such as the
// vehicle behind a fault report. It fuzzy-filters the loaded
// candidates as the user types, highlighting the matched characters.
type Picker struct {
	Title      string
	input      textinput.Model
	candidates []search.Candidate
	matches    []pickerMatch
	cursor     int
	visible    bool
	partial    bool
	width      int
}

type pickerMatch struct {
	candidate search.Candidate
	indexes   []int // Byte offsets of matched runes in the label
}

// NewPicker creates a picker component
func NewPicker(title string) Picker {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 100
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.PlaceholderStyle = styles.DimStyle

	return Picker{Title: title, input: ti}
}

// SetCandidates replaces the selectable records. partial marks the set
// as incomplete after a degraded reference load.
func (p *Picker) SetCandidates(candidates []search.Candidate, partial bool) {
	p.candidates = candidates
	p.partial = partial
	p.applyFilter()
}

// SetSize updates the component dimensions
func (p *Picker) SetSize(width int) {
	p.width = width
	p.input.Width = width - 8
}

// Show opens the picker with an empty filter
func (p *Picker) Show() {
	p.visible = true
	p.cursor = 0
	p.input.SetValue("")
	p.input.Focus()
	p.applyFilter()
}

// Hide closes the picker
func (p *Picker) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns true if the picker is open
func (p Picker) IsVisible() bool {
	return p.visible
}

// Selected returns the candidate under the cursor, or false when the
// filtered list is empty.
func (p Picker) Selected() (search.Candidate, bool) {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return search.Candidate{}, false
	}
	return p.matches[p.cursor].candidate, true
}

// MoveUp moves the cursor up one entry
func (p *Picker) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor down one entry
func (p *Picker) MoveDown() {
	if p.cursor < len(p.matches)-1 {
		p.cursor++
	}
}

// Update forwards a key event to the filter input
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.applyFilter()
	}
	return cmd
}

// applyFilter ranks the candidates for the current query and records the
// matched byte offsets per label for highlighting. Ordering comes from
// search.Rank; an empty query keeps the load order.
func (p *Picker) applyFilter() {
	query := strings.TrimSpace(p.input.Value())
	p.cursor = 0

	ranked := search.Rank(query, p.candidates)
	p.matches = make([]pickerMatch, len(ranked))
	for i, r := range ranked {
		m := pickerMatch{candidate: r.Candidate}
		if query != "" {
			if found := fuzzy.Find(query, []string{r.Candidate.Label}); len(found) > 0 {
				m.indexes = found[0].MatchedIndexes
			}
		}
		p.matches[i] = m
	}
}

// View renders the picker modal
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(styles.ModalTitleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.matches) == 0 {
		if p.partial && len(p.candidates) == 0 {
			b.WriteString(styles.WarningStyle.Render("References unavailable. Enter the value manually."))
		} else {
			b.WriteString(styles.DimStyle.Render("No matches"))
		}
	}

	limit := 10
	if limit > len(p.matches) {
		limit = len(p.matches)
	}
	for i := 0; i < limit; i++ {
		m := p.matches[i]
		line := highlightMatch(m.candidate.Label, m.indexes, i == p.cursor)
		if i == p.cursor {
			b.WriteString(styles.SelectedItemStyle.Render("▸ ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(p.matches) > limit {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("… %d more", len(p.matches)-limit)))
		b.WriteString("\n")
	}
	if p.partial && len(p.candidates) > 0 {
		b.WriteString(styles.WarningStyle.Render("Showing a partial list"))
	}

	return styles.ModalStyle.Width(p.width).Render(b.String())
}

// matchSegment is a run of consecutive label runes sharing a match state.
type matchSegment struct {
	text    string
	matched bool
}

// matchSegments splits a label into alternating matched and unmatched
// runs. indexes are byte offsets of matched rune starts, the form
// sahilm/fuzzy reports them in.
func matchSegments(label string, indexes []int) []matchSegment {
	matched := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		matched[idx] = true
	}

	var segs []matchSegment
	for i, r := range label {
		m := matched[i]
		if len(segs) == 0 || segs[len(segs)-1].matched != m {
			segs = append(segs, matchSegment{matched: m})
		}
		segs[len(segs)-1].text += string(r)
	}
	return segs
}

// highlightMatch renders a label with the fuzzy-matched runes accented
func highlightMatch(label string, indexes []int, selected bool) string {
	if len(indexes) == 0 {
		return label
	}

	highlight := styles.MatchHighlightStyle
	if selected {
		highlight = styles.MatchHighlightSelectedStyle
	}

	var b strings.Builder
	for _, seg := range matchSegments(label, indexes) {
		if seg.matched {
			b.WriteString(highlight.Render(seg.text))
		} else {
			b.WriteString(seg.text)
		}
	}
	return b.String()
}
