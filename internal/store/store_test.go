package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

func newTestStore(t *testing.T) *PrefStore {
	t.Helper()
	s, err := NewPrefStore(t.TempDir(), "https://erp.example.test")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecentSearchesOrderAndDedupe(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddRecentSearch(domain.ResourceVehicles, "MAN"))
	require.NoError(t, s.AddRecentSearch(domain.ResourceVehicles, "Scania"))
	require.NoError(t, s.AddRecentSearch(domain.ResourceVehicles, "man"))

	terms := s.RecentSearches(domain.ResourceVehicles)
	assert.Equal(t, []string{"man", "Scania"}, terms, "case-insensitive dedupe, newest first")
}

func TestRecentSearchesCapped(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 15; i++ {
		require.NoError(t, s.AddRecentSearch(domain.ResourceContacts, string(rune('a'+i))))
	}
	assert.Len(t, s.RecentSearches(domain.ResourceContacts), maxRecentSearches)
}

func TestBlankSearchIgnored(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddRecentSearch(domain.ResourceVehicles, "   "))
	assert.Empty(t, s.RecentSearches(domain.ResourceVehicles))
}

func TestSearchesAreScopedPerResource(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddRecentSearch(domain.ResourceVehicles, "MAN"))
	assert.Empty(t, s.RecentSearches(domain.ResourceInvoices))
}

func TestFilterPresetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	assert.Nil(t, s.FilterPreset(domain.ResourceInvoices))

	want := map[string]string{"status": "overdue"}
	require.NoError(t, s.SaveFilterPreset(domain.ResourceInvoices, want))
	assert.Equal(t, want, s.FilterPreset(domain.ResourceInvoices))
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	assert.Nil(t, s.Session())

	sess := Session{
		ServerURL: "https://erp.example.test",
		Username:  "dispatcher",
		LastSeen:  time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveSession(sess))

	got := s.Session()
	require.NotNil(t, got)
	assert.Equal(t, sess.Username, got.Username)
	assert.True(t, sess.LastSeen.Equal(got.LastSeen))
}

func TestMemoryOnlyMode(t *testing.T) {
	s, err := NewPrefStore("", "")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.AddRecentSearch(domain.ResourceTires, "315/70"))
	assert.Equal(t, []string{"315/70"}, s.RecentSearches(domain.ResourceTires))
}
