package core

import "context"

// MemoryStore defines retrieval and persistence of conversational memory
// around a turn. Implementations can back retrieval with embeddings,
// keywords or any heuristic; the engine only relies on the contract below.
//
// Access is per-session. The engine does not serialize concurrent turns for
// one session, so implementations must not corrupt their own state under
// concurrent Retrieve/Commit calls.
type MemoryStore interface {
	// Retrieve returns an ordered sequence of prior interaction summaries
	// relevant to the query, at most limit entries. A missing session is not
	// an error; it yields an empty sequence.
	Retrieve(ctx context.Context, sessionID, query string, limit int) ([]Snippet, error)
	// Commit records a new interaction. Ownership of the record passes to
	// the store.
	Commit(ctx context.Context, interaction Interaction) error
}
