// Package store persists per-server UI preferences: recent search terms,
// saved filter presets, and session metadata. Record data is never stored
// here; lists are always re-fetched from the backend.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

// Bucket names
var (
	bucketSearches = []byte("recent_searches")
	bucketPresets  = []byte("filter_presets")
	bucketSession  = []byte("session")
)

const maxRecentSearches = 10

// Session is cached login metadata shown on the start screen.
type Session struct {
	ServerURL string    `json:"server_url"`
	Username  string    `json:"username"`
	LastSeen  time.Time `json:"last_seen"`
}

// PrefStore implements the preference store on BoltDB.
type PrefStore struct {
	db *bolt.DB
	mu sync.RWMutex

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewPrefStore opens (or creates) the preference database under baseDir,
// namespaced by server URL. An empty baseDir yields a memory-only store.
func NewPrefStore(baseDir, serverURL string) (*PrefStore, error) {
	if baseDir == "" {
		return &PrefStore{cache: make(map[string][]byte)}, nil
	}

	dir := baseDir
	if serverURL != "" {
		dir = filepath.Join(baseDir, hashServerURL(serverURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "fleetdesk.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSearches, bucketPresets, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PrefStore{db: db, cache: make(map[string][]byte)}, nil
}

func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *PrefStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *PrefStore) get(bucket []byte, key string, dest any) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucket).Get([]byte(key)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || data == nil {
		return false
	}

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *PrefStore) put(bucket []byte, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[string(bucket)+":"+key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

// === Recent searches ===

// RecentSearches returns the stored search terms for a resource,
// most recent first.
func (s *PrefStore) RecentSearches(r domain.Resource) []string {
	var terms []string
	s.get(bucketSearches, string(r), &terms)
	return terms
}

// AddRecentSearch records a term for a resource, deduplicating and keeping
// the newest ones. Blank terms are ignored.
func (s *PrefStore) AddRecentSearch(r domain.Resource, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	terms := s.RecentSearches(r)
	out := []string{term}
	for _, t := range terms {
		if !strings.EqualFold(t, term) {
			out = append(out, t)
		}
	}
	if len(out) > maxRecentSearches {
		out = out[:maxRecentSearches]
	}
	return s.put(bucketSearches, string(r), out)
}

// === Filter presets ===

// FilterPreset returns the saved filter state for a resource, nil if none.
func (s *PrefStore) FilterPreset(r domain.Resource) map[string]string {
	var preset map[string]string
	if !s.get(bucketPresets, string(r), &preset) {
		return nil
	}
	return preset
}

// SaveFilterPreset stores the filter state a screen should reopen with.
func (s *PrefStore) SaveFilterPreset(r domain.Resource, filters map[string]string) error {
	return s.put(bucketPresets, string(r), filters)
}

// === Session ===

// Session returns the cached session metadata, nil if never saved.
func (s *PrefStore) Session() *Session {
	var sess Session
	if !s.get(bucketSession, "current", &sess) {
		return nil
	}
	return &sess
}

// SaveSession stores session metadata after a successful connect.
func (s *PrefStore) SaveSession(sess Session) error {
	return s.put(bucketSession, "current", sess)
}
