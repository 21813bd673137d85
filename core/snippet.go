package core

// Snippet is one retrieved memory item injected into a turn before
// execution. Snippets are read-only after injection.
type Snippet struct {
	ID       string
	Content  string
	Score    float64
	Metadata map[string]any
}

// SnippetTexts extracts the content strings of an ordered snippet sequence.
func SnippetTexts(snippets []Snippet) []string {
	texts := make([]string, len(snippets))
	for i, s := range snippets {
		texts[i] = s.Content
	}
	return texts
}
