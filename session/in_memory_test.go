package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/HellKaiser45/Ulvek/core"
)

func TestInMemoryStore_AppendAndHistory(t *testing.T) {
	store := NewInMemoryStore()

	if err := store.Append("s1", core.NewInteraction("s1", "user", "hello")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := store.Append("s1", core.NewInteraction("s1", "assistant", "hi there")); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	history, err := store.History("s1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 interactions, got %d", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Fatalf("expected append order, got %#v", history)
	}
}

func TestInMemoryStore_MissingSession(t *testing.T) {
	store := NewInMemoryStore()
	history, err := store.History("missing")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty transcript, got %d", len(history))
	}
}

func TestInMemoryStore_HistoryIsACopy(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.Append("s1", core.NewInteraction("s1", "user", "original"))

	history, _ := store.History("s1")
	history[0].Content = "mutated"

	fresh, _ := store.History("s1")
	if fresh[0].Content != "original" {
		t.Fatalf("expected copy isolation, got %q", fresh[0].Content)
	}
}

func TestInMemoryStore_ConcurrentAppend(t *testing.T) {
	store := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Append("s1", core.NewInteraction("s1", "user", fmt.Sprintf("msg %d", i)))
		}(i)
	}
	wg.Wait()

	history, err := store.History("s1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 20 {
		t.Fatalf("expected 20 interactions, got %d", len(history))
	}
}
