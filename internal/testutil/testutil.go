// Package testutil contains helper stubs and builders used across tests to
// reduce boilerplate when constructing snippets, capabilities and memory
// stores. These helpers are intentionally minimal and are not intended for
// production usage.
package testutil

import (
	"context"

	"github.com/HellKaiser45/Ulvek/core"
)

// Snippets builds a memory context from plain content strings.
func Snippets(contents ...string) []core.Snippet {
	snippets := make([]core.Snippet, len(contents))
	for i, content := range contents {
		snippets[i] = core.Snippet{ID: core.NewID(), Content: content, Score: 1.0}
	}
	return snippets
}

var (
	_ core.Capability  = (*CannedCapability)(nil)
	_ core.MemoryStore = (*FlakyMemoryStore)(nil)
)

// CannedCapability answers every Execute call with a fixed answer or error
// and counts invocations.
type CannedCapability struct {
	CapName string
	Answer  string
	Err     error
	Calls   int
}

// Name implements core.Capability.
func (c *CannedCapability) Name() string { return c.CapName }

// Execute implements core.Capability.
func (c *CannedCapability) Execute(context.Context, string, []core.Snippet) (core.Result, error) {
	c.Calls++
	if c.Err != nil {
		return core.Result{}, c.Err
	}
	return core.Result{Answer: c.Answer}, nil
}

// FlakyMemoryStore wraps configurable retrieve/commit behavior and records
// call counts.
type FlakyMemoryStore struct {
	RetrieveErr   error
	CommitErr     error
	Snippets      []core.Snippet
	RetrieveCalls int
	CommitCalls   int
	Committed     []core.Interaction
}

// Retrieve implements core.MemoryStore.
func (s *FlakyMemoryStore) Retrieve(context.Context, string, string, int) ([]core.Snippet, error) {
	s.RetrieveCalls++
	if s.RetrieveErr != nil {
		return nil, s.RetrieveErr
	}
	return s.Snippets, nil
}

// Commit implements core.MemoryStore.
func (s *FlakyMemoryStore) Commit(_ context.Context, interaction core.Interaction) error {
	s.CommitCalls++
	if s.CommitErr != nil {
		return s.CommitErr
	}
	s.Committed = append(s.Committed, interaction)
	return nil
}
