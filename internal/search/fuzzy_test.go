package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fleet() []Candidate {
	return []Candidate{
		{ID: 1, Label: "MAN TGX 18.500"},
		{ID: 2, Label: "Mercedes Actros"},
		{ID: 3, Label: "Scania R450"},
		{ID: 4, Label: "Volvo FH16"},
	}
}

func TestRankEmptyQueryKeepsOrder(t *testing.T) {
	matches := Rank("", fleet())

	assert.Len(t, matches, 4)
	assert.Equal(t, int64(1), matches[0].Candidate.ID)
	assert.Equal(t, int64(4), matches[3].Candidate.ID)
}

func TestRankFiltersNonMatches(t *testing.T) {
	matches := Rank("scania", fleet())

	assert.Len(t, matches, 1)
	assert.Equal(t, int64(3), matches[0].Candidate.ID)
}

func TestRankIsCaseInsensitive(t *testing.T) {
	matches := Rank("VOLVO", fleet())

	assert.Len(t, matches, 1)
	assert.Equal(t, "Volvo FH16", matches[0].Candidate.Label)
}

func TestRankOrdersByCloseness(t *testing.T) {
	candidates := []Candidate{
		{ID: 1, Label: "Winter tires front axle"},
		{ID: 2, Label: "Tires"},
	}

	matches := Rank("tires", candidates)

	assert.Len(t, matches, 2)
	assert.Equal(t, int64(2), matches[0].Candidate.ID)
}

func TestLabels(t *testing.T) {
	matches := Rank("m", fleet())

	labels := Labels(matches)
	assert.Equal(t, len(matches), len(labels))
	for i, m := range matches {
		assert.Equal(t, m.Candidate.Label, labels[i])
	}
}
