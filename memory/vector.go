package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/openai/openai-go"

	"github.com/HellKaiser45/Ulvek/core"
)

// Embedder turns text into a dense vector. Implementations wrap an embedding
// API; tests supply deterministic stubs.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// OpenAIEmbedder generates embeddings via the OpenAI embeddings API.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// EmbedderOptions configures an OpenAIEmbedder.
type EmbedderOptions struct {
	Model openai.EmbeddingModel
}

// NewOpenAIEmbedder creates an embedder using the official client.
func NewOpenAIEmbedder(optFns ...func(o *EmbedderOptions)) *OpenAIEmbedder {
	client := openai.NewClient()
	return NewOpenAIEmbedderFromClient(&client, optFns...)
}

// NewOpenAIEmbedderFromClient creates an embedder from an existing client.
func NewOpenAIEmbedderFromClient(client *openai.Client, optFns ...func(o *EmbedderOptions)) *OpenAIEmbedder {
	opts := EmbedderOptions{Model: openai.EmbeddingModelTextEmbedding3Small}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &OpenAIEmbedder{client: client, model: opts.Model}
}

// Embed implements Embedder.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: []string{text}},
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return resp.Data[0].Embedding, nil
}

// vectorEntry pairs a committed interaction with its embedding.
type vectorEntry struct {
	interaction core.Interaction
	vector      []float64
}

// VectorStoreOptions configures a VectorStore.
type VectorStoreOptions struct {
	// MinScore drops retrieval hits below this cosine similarity.
	MinScore float64
}

// VectorStore is a MemoryStore that embeds committed interactions and
// retrieves by cosine similarity over a per-session in-process scan. The
// scan is linear in the number of committed interactions per session, which
// is fine at conversational scale; swap for an external vector index beyond
// that.
type VectorStore struct {
	mu       sync.RWMutex
	embedder Embedder
	entries  map[string][]vectorEntry // sessionID -> embedded records
	minScore float64
}

var _ core.MemoryStore = (*VectorStore)(nil)

// NewVectorStore creates a vector memory store over the given embedder.
func NewVectorStore(embedder Embedder, optFns ...func(o *VectorStoreOptions)) *VectorStore {
	opts := VectorStoreOptions{MinScore: 0.5}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &VectorStore{
		embedder: embedder,
		entries:  make(map[string][]vectorEntry),
		minScore: opts.MinScore,
	}
}

// Retrieve implements core.MemoryStore.
func (v *VectorStore) Retrieve(ctx context.Context, sessionID, query string, limit int) ([]core.Snippet, error) {
	if limit <= 0 {
		return []core.Snippet{}, nil
	}
	queryVector, err := v.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	v.mu.RLock()
	entries := v.entries[sessionID]
	scored := make([]core.Snippet, 0, len(entries))
	for _, entry := range entries {
		score := cosineSimilarity(queryVector, entry.vector)
		if score < v.minScore {
			continue
		}
		scored = append(scored, core.Snippet{
			ID:      entry.interaction.ID,
			Content: entry.interaction.Content,
			Score:   score,
			Metadata: map[string]any{
				"role":      entry.interaction.Role,
				"timestamp": entry.interaction.Timestamp,
			},
		})
	}
	v.mu.RUnlock()

	sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// Commit implements core.MemoryStore.
func (v *VectorStore) Commit(ctx context.Context, interaction core.Interaction) error {
	vector, err := v.embedder.Embed(ctx, interaction.Content)
	if err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries[interaction.SessionID] = append(v.entries[interaction.SessionID], vectorEntry{
		interaction: interaction,
		vector:      vector,
	})
	return nil
}

// cosineSimilarity computes the cosine similarity between two vectors,
// returning 0 for mismatched or zero-magnitude inputs.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
