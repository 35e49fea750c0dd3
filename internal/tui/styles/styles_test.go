package styles

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateKeepsShortStrings(t *testing.T) {
	assert.Equal(t, "Kühlkoffer", Truncate("Kühlkoffer", 20))
	assert.Equal(t, "abc", Truncate("abc", 3))
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	for width := 1; width <= 12; width++ {
		got := Truncate("Kühlkoffer für Gemüse", width)
		assert.True(t, utf8.ValidString(got), "width %d produced invalid UTF-8: %q", width, got)
	}
}

func TestTruncateAddsEllipsis(t *testing.T) {
	assert.Equal(t, "Kühlko...", Truncate("Kühlkoffer für Gemüse", 9))
}

func TestTruncateZeroWidth(t *testing.T) {
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestPadFillsToWidth(t *testing.T) {
	assert.Equal(t, "Büro    ", Pad("Büro", 8))
	assert.Len(t, []rune(Pad("Büro", 8)), 8)
}

func TestPadClipsWithoutSplittingRunes(t *testing.T) {
	got := Pad("Gemüsegroßhandel", 5)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Gemüs", got)
}
