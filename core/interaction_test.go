package core

import "testing"

func TestNewInteraction(t *testing.T) {
	interaction := NewInteraction("s1", "user", "hello")
	if interaction.ID == "" {
		t.Fatalf("expected generated id")
	}
	if interaction.SessionID != "s1" || interaction.Role != "user" || interaction.Content != "hello" {
		t.Fatalf("unexpected interaction: %#v", interaction)
	}
	if interaction.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestSnippetTexts(t *testing.T) {
	snippets := []Snippet{
		{ID: "a", Content: "first"},
		{ID: "b", Content: "second"},
	}
	texts := SnippetTexts(snippets)
	if len(texts) != 2 || texts[0] != "first" || texts[1] != "second" {
		t.Fatalf("unexpected texts: %#v", texts)
	}
	if got := SnippetTexts(nil); len(got) != 0 {
		t.Fatalf("expected empty slice for nil input, got %#v", got)
	}
}
