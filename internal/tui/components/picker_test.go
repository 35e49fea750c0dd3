package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/search"
)

func testCandidates() []search.Candidate {
	return []search.Candidate{
		{ID: 1, Label: "MAN TGX 18.500"},
		{ID: 2, Label: "Mercedes Actros"},
		{ID: 3, Label: "Scania R450"},
	}
}

func typeString(p *Picker, s string) {
	for _, r := range s {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPickerFiltersAsTyped(t *testing.T) {
	p := NewPicker("Vehicle")
	p.SetCandidates(testCandidates(), false)
	p.Show()

	typeString(&p, "scania")

	selected, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(3), selected.ID)
}

func TestPickerEmptyQueryKeepsAll(t *testing.T) {
	p := NewPicker("Vehicle")
	p.SetCandidates(testCandidates(), false)
	p.Show()

	selected, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), selected.ID)

	p.MoveDown()
	selected, _ = p.Selected()
	assert.Equal(t, int64(2), selected.ID)
}

func TestPickerNoMatch(t *testing.T) {
	p := NewPicker("Vehicle")
	p.SetCandidates(testCandidates(), false)
	p.Show()

	typeString(&p, "zzz")

	_, ok := p.Selected()
	assert.False(t, ok)
}

func TestPickerRanksClosestLabelFirst(t *testing.T) {
	p := NewPicker("Vehicle")
	p.SetCandidates([]search.Candidate{
		{ID: 1, Label: "Winter tires front axle"},
		{ID: 2, Label: "Tires"},
	}, false)
	p.Show()

	typeString(&p, "tires")

	require.Len(t, p.matches, 2)
	assert.Equal(t, int64(2), p.matches[0].candidate.ID, "exact label outranks the longer one")
	assert.Equal(t, int64(1), p.matches[1].candidate.ID)
}

func TestPickerHighlightsTypedRuns(t *testing.T) {
	p := NewPicker("Vehicle")
	p.SetCandidates([]search.Candidate{{ID: 1, Label: "Scania R450"}}, false)
	p.Show()

	typeString(&p, "scania")

	require.Len(t, p.matches, 1)
	assert.NotEmpty(t, p.matches[0].indexes, "matched offsets drive the highlight")
}

func TestMatchSegmentsMultibyteLabels(t *testing.T) {
	// Byte offsets of K, ü, h, l; ü spans two bytes.
	segs := matchSegments("Kühlauflieger", []int{0, 1, 3, 4})

	require.Len(t, segs, 2)
	assert.Equal(t, matchSegment{text: "Kühl", matched: true}, segs[0])
	assert.Equal(t, matchSegment{text: "auflieger", matched: false}, segs[1])
}

func TestMatchSegmentsAlternatingRuns(t *testing.T) {
	segs := matchSegments("MAN TGX", []int{0, 4, 5, 6})

	require.Len(t, segs, 3)
	assert.Equal(t, matchSegment{text: "M", matched: true}, segs[0])
	assert.Equal(t, matchSegment{text: "AN ", matched: false}, segs[1])
	assert.Equal(t, matchSegment{text: "TGX", matched: true}, segs[2])
}

func TestPickerCursorResetsOnFilterChange(t *testing.T) {
	p := NewPicker("Vehicle")
	p.SetCandidates(testCandidates(), false)
	p.Show()

	p.MoveDown()
	p.MoveDown()
	typeString(&p, "m")

	selected, ok := p.Selected()
	require.True(t, ok)
	// Cursor is back at the top of the filtered list
	assert.NotEqual(t, int64(3), selected.ID)
}
