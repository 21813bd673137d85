package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/HellKaiser45/Ulvek/core"
)

// InMemoryStore is a naive process-local MemoryStore keeping committed
// interactions per session.
//
// Concurrency: protected by RWMutex.
// Retrieval: linear scan with case-insensitive substring matching, most
// recent first, assigning a constant score of 1.0 to every hit. An empty
// query returns the most recent interactions. Suitable for tests and demos;
// swap for the vector store or an external index for production retrieval.
type InMemoryStore struct {
	mu           sync.RWMutex
	interactions map[string][]core.Interaction // sessionID -> committed records
}

var _ core.MemoryStore = (*InMemoryStore)(nil)

// NewInMemoryStore creates a new in-memory memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{interactions: make(map[string][]core.Interaction)}
}

// Retrieve implements core.MemoryStore.
func (m *InMemoryStore) Retrieve(_ context.Context, sessionID, query string, limit int) ([]core.Snippet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records, exists := m.interactions[sessionID]
	if !exists || limit <= 0 {
		return []core.Snippet{}, nil
	}
	needle := strings.ToLower(query)
	snippets := make([]core.Snippet, 0, limit)
	for i := len(records) - 1; i >= 0 && len(snippets) < limit; i-- {
		rec := records[i]
		if query != "" && !strings.Contains(strings.ToLower(rec.Content), needle) {
			continue
		}
		snippets = append(snippets, core.Snippet{
			ID:      rec.ID,
			Content: rec.Content,
			Score:   1.0,
			Metadata: map[string]any{
				"role":      rec.Role,
				"timestamp": rec.Timestamp,
			},
		})
	}
	return snippets, nil
}

// Commit implements core.MemoryStore.
func (m *InMemoryStore) Commit(_ context.Context, interaction core.Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactions[interaction.SessionID] = append(m.interactions[interaction.SessionID], interaction)
	return nil
}

// Len reports the number of committed interactions for a session.
func (m *InMemoryStore) Len(sessionID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.interactions[sessionID])
}
