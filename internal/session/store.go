package session

import (
	"sync"
	"time"

	"github.com/privameter/privameter/internal/assess"
)

// Store tracks the assessments produced within a session. There is no
// package-level session map: whoever owns the session lifecycle constructs a
// Store and passes the handle along. In-memory and sqlite implementations are
// provided; a distributed deployment would implement Store over Redis or
// similar.
type Store interface {
	// Record appends one assessed artifact to the session history.
	Record(entry Entry) error

	// List returns all recorded entries for a session, oldest first.
	List(sessionID string) ([]Entry, error)

	// Sessions returns the known session ids.
	Sessions() ([]string, error)

	// Close releases resources held by the store.
	Close() error
}

// Entry is one assessed artifact in a session's history.
type Entry struct {
	SessionID  string
	RecordedAt time.Time
	Assessment assess.PrivacyAssessment
}

// MemoryStore is a thread-safe in-memory session store, suitable for
// single-process use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]Entry)}
}

func (s *MemoryStore) Record(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.SessionID] = append(s.entries[entry.SessionID], entry)
	return nil
}

func (s *MemoryStore) List(sessionID string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.entries[sessionID]
	result := make([]Entry, len(src))
	copy(result, src)
	return result, nil
}

func (s *MemoryStore) Sessions() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
