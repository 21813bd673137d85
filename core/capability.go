package core

import "context"

// Result is the final answer produced by exactly one capability per turn.
type Result struct {
	// TurnID correlates the result with the turn that produced it.
	TurnID string
	// Route is the classification outcome that selected the capability.
	Route Route
	// Answer is the user-facing answer text.
	Answer string
}

// Capability is a self-contained unit implementing one route's behavior.
// The four concrete capabilities (conversation, direct code, contextual
// code, orchestrated code) satisfy this contract independently; there is no
// shared base behavior beyond the signature. This is the extension point for
// adding new routes without touching the execution graph.
//
// Execute blocks until the capability completes or fails and must respect
// context cancellation. Timeouts are the capability's own concern.
type Capability interface {
	// Name returns a short identifier used for logging.
	Name() string
	// Execute produces the answer for one request given the injected memory
	// context. Implementations fill Result.Answer only; Route and TurnID are
	// stamped by the dispatching layers.
	Execute(ctx context.Context, request string, memoryContext []Snippet) (Result, error)
}

// Classifier inspects an incoming request (and optionally the memory
// context) and selects exactly one route. It is total over its input domain:
// every request maps to a member of the closed route set or the call fails
// with a *ClassificationError. There is no unclassified terminal state and
// no silent default.
type Classifier interface {
	Classify(ctx context.Context, request string, memoryContext []Snippet) (Route, error)
}
