package session

import (
	"sync"

	"github.com/HellKaiser45/Ulvek/core"
)

// Store persists the ordered interaction transcript of each session.
type Store interface {
	// Append adds an interaction to the session transcript, creating the
	// session lazily.
	Append(sessionID string, interaction core.Interaction) error
	// History returns the session transcript in append order. A missing
	// session yields an empty transcript.
	History(sessionID string) ([]core.Interaction, error)
}

// InMemoryStore is a volatile Store implementation keeping transcripts in a
// process local map. It is safe for concurrent access and best suited for
// tests or ephemeral demo setups. History returns a defensive copy to
// prevent external mutation of internal state.
type InMemoryStore struct {
	mu          sync.RWMutex
	transcripts map[string][]core.Interaction
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore constructs an empty in-memory transcript store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{transcripts: make(map[string][]core.Interaction)}
}

// Append implements Store.
func (s *InMemoryStore) Append(sessionID string, interaction core.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[sessionID] = append(s.transcripts[sessionID], interaction)
	return nil
}

// History implements Store.
func (s *InMemoryStore) History(sessionID string) ([]core.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transcript := s.transcripts[sessionID]
	out := make([]core.Interaction, len(transcript))
	copy(out, transcript)
	return out, nil
}
