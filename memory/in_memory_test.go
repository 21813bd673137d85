package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/HellKaiser45/Ulvek/core"
)

func TestInMemoryStore_CommitAndRetrieve(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		interaction := core.NewInteraction("s1", "assistant", fmt.Sprintf("answer %d", i))
		if err := store.Commit(ctx, interaction); err != nil {
			t.Fatalf("commit failed: %v", err)
		}
	}
	if store.Len("s1") != 3 {
		t.Fatalf("expected 3 committed interactions, got %d", store.Len("s1"))
	}

	snippets, err := store.Retrieve(ctx, "s1", "answer", 10)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if len(snippets) != 3 {
		t.Fatalf("expected 3 snippets, got %d", len(snippets))
	}
	// Most recent first.
	if snippets[0].Content != "answer 2" || snippets[2].Content != "answer 0" {
		t.Fatalf("unexpected order: %#v", core.SnippetTexts(snippets))
	}
	for _, s := range snippets {
		if s.Score != 1.0 {
			t.Fatalf("expected constant score 1.0, got %f", s.Score)
		}
		if s.Metadata["role"] != "assistant" {
			t.Fatalf("expected role metadata, got %#v", s.Metadata)
		}
	}
}

func TestInMemoryStore_SubstringMatch(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	_ = store.Commit(ctx, core.NewInteraction("s1", "user", "The Deploy Pipeline"))
	_ = store.Commit(ctx, core.NewInteraction("s1", "user", "unrelated note"))

	snippets, err := store.Retrieve(ctx, "s1", "deploy", 10)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if len(snippets) != 1 || snippets[0].Content != "The Deploy Pipeline" {
		t.Fatalf("expected case-insensitive substring match, got %#v", core.SnippetTexts(snippets))
	}
}

func TestInMemoryStore_EmptyQueryReturnsRecent(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = store.Commit(ctx, core.NewInteraction("s1", "user", fmt.Sprintf("note %d", i)))
	}

	snippets, err := store.Retrieve(ctx, "s1", "", 2)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(snippets))
	}
	if snippets[0].Content != "note 4" || snippets[1].Content != "note 3" {
		t.Fatalf("expected most recent notes, got %#v", core.SnippetTexts(snippets))
	}
}

func TestInMemoryStore_EdgeCases(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	// missing session
	snippets, err := store.Retrieve(ctx, "missing", "anything", 10)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if len(snippets) != 0 {
		t.Fatalf("expected empty result for missing session, got %d", len(snippets))
	}

	// non-positive limit
	_ = store.Commit(ctx, core.NewInteraction("s1", "user", "note"))
	snippets, err = store.Retrieve(ctx, "s1", "", 0)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if len(snippets) != 0 {
		t.Fatalf("expected empty result for zero limit, got %d", len(snippets))
	}

	// sessions are isolated
	snippets, _ = store.Retrieve(ctx, "s2", "note", 10)
	if len(snippets) != 0 {
		t.Fatalf("expected session isolation, got %d snippets", len(snippets))
	}
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Commit(ctx, core.NewInteraction("s1", "user", fmt.Sprintf("note %d", i)))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.Retrieve(ctx, "s1", "note", 5)
		}()
	}
	wg.Wait()

	if store.Len("s1") != 10 {
		t.Fatalf("expected 10 committed interactions, got %d", store.Len("s1"))
	}
}
