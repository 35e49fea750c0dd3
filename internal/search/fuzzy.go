// Package search ranks already-loaded reference records for the
// picker components. Server-side list search goes through the API;
// this only narrows small candidate sets that are held in memory.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Candidate is a selectable reference record, such as a vehicle or a
// product category offered in a form picker.
type Candidate struct {
	ID    int64
	Label string
}

// Match pairs a candidate with its fuzzy rank. Lower ranks are
// better matches.
type Match struct {
	Candidate Candidate
	Rank      int
}

// Rank filters and orders candidates against the query. An empty
// query returns every candidate in its original order.
func Rank(query string, candidates []Candidate) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		matches := make([]Match, len(candidates))
		for i, c := range candidates {
			matches[i] = Match{Candidate: c}
		}
		return matches
	}

	var matches []Match
	for _, c := range candidates {
		rank := fuzzy.RankMatchNormalizedFold(query, c.Label)
		if rank < 0 {
			continue
		}
		matches = append(matches, Match{Candidate: c, Rank: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Rank < matches[j].Rank
	})

	return matches
}

// Labels extracts the labels from ranked matches, preserving order.
func Labels(matches []Match) []string {
	labels := make([]string, len(matches))
	for i, m := range matches {
		labels[i] = m.Candidate.Label
	}
	return labels
}
