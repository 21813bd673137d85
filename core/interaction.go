package core

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is the persisted record of one message within a session. The
// engine creates one such record per turn and hands ownership to the
// MemoryStore on commit; it never re-reads the record within the same turn.
type Interaction struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // user or assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewInteraction creates an interaction record with a fresh ID and a UTC
// timestamp.
func NewInteraction(sessionID, role, content string) Interaction {
	return Interaction{
		ID:        NewID(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewID generates a unique identifier used for turns and interaction records.
func NewID() string { return uuid.NewString() }
