package runner

import (
	"context"
	"time"

	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/graph"
	"github.com/HellKaiser45/Ulvek/logging"
	"github.com/HellKaiser45/Ulvek/memory"
	"github.com/HellKaiser45/Ulvek/session"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// MemoryStore backs retrieval and commit. Defaults to in-memory.
	MemoryStore core.MemoryStore
	// SessionStore records the per-session transcript. Defaults to in-memory.
	SessionStore session.Store
	// MemoryRequired makes retrieval failures fatal instead of degrading to
	// an empty memory context.
	MemoryRequired bool
	// RetrieveLimit caps the snippets injected per turn.
	RetrieveLimit int
	// Logger defaults to NoOp.
	Logger logging.Logger
}

// FinalAnswer is the outcome of a successful turn.
type FinalAnswer struct {
	// TurnID identifies the turn that produced the answer.
	TurnID string
	// SessionID echoes the session the turn belongs to.
	SessionID string
	// Route is the classification outcome that handled the turn.
	Route core.Route
	// Answer is the user-facing answer text.
	Answer string
	// MemoryDegraded flags that memory retrieval failed and the turn ran
	// with an empty memory context.
	MemoryDegraded bool
}

// Runner coordinates one turn per call: it fetches memory context, drives
// the execution graph, commits the new interaction and records the
// transcript. Each RunTurn call is an independent unit of work; Runner holds
// no per-turn state and is safe for concurrent use across sessions.
//
// Side effects per turn: exactly zero or one memory retrieve and zero or one
// memory commit. The runner performs no retries of its own; retry policy
// belongs to the MemoryStore implementation.
type Runner struct {
	graph          *graph.Graph
	memoryStore    core.MemoryStore
	sessionStore   session.Store
	memoryRequired bool
	retrieveLimit  int
	logger         logging.Logger
}

// New constructs a Runner with optional overrides.
func New(g *graph.Graph, optFns ...func(o *Options)) *Runner {
	opts := Options{
		MemoryStore:   memory.NewInMemoryStore(),
		SessionStore:  session.NewInMemoryStore(),
		RetrieveLimit: 5,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Runner{
		graph:          g,
		memoryStore:    opts.MemoryStore,
		sessionStore:   opts.SessionStore,
		memoryRequired: opts.MemoryRequired,
		retrieveLimit:  opts.RetrieveLimit,
		logger:         opts.Logger,
	}
}

// RunTurn executes one complete request/response cycle for a session and
// returns the final answer. Failures surface as the typed errors of the
// core package; a failed turn commits nothing to memory.
func (r *Runner) RunTurn(ctx context.Context, sessionID, request string) (FinalAnswer, error) {
	start := time.Now()

	var degraded bool
	snippets, err := r.memoryStore.Retrieve(ctx, sessionID, request, r.retrieveLimit)
	if err != nil {
		if r.memoryRequired {
			return FinalAnswer{}, &core.MemoryUnavailableError{Cause: err}
		}
		r.logger.Warn("memory retrieve failed for session %s, continuing degraded: %v", sessionID, err)
		degraded = true
		snippets = nil
	}

	r.appendTranscript(core.NewInteraction(sessionID, "user", request))

	result, err := r.graph.Run(ctx, request, snippets)
	if err != nil {
		r.logger.Error("turn failed for session %s after %s: %v", sessionID, time.Since(start), err)
		return FinalAnswer{}, err
	}

	r.appendTranscript(core.NewInteraction(sessionID, "assistant", result.Answer))

	// Best-effort side-channel: the user already has their result, so a
	// failed commit is reported but never overrides it.
	if err := r.memoryStore.Commit(ctx, core.NewInteraction(sessionID, "assistant", result.Answer)); err != nil {
		werr := &core.MemoryWriteError{Cause: err}
		r.logger.Warn("memory commit failed for session %s: %v", sessionID, werr)
	}

	r.logger.Info("turn %s completed for session %s via %s in %s", result.TurnID, sessionID, result.Route, time.Since(start))
	return FinalAnswer{
		TurnID:         result.TurnID,
		SessionID:      sessionID,
		Route:          result.Route,
		Answer:         result.Answer,
		MemoryDegraded: degraded,
	}, nil
}

// History returns the recorded transcript for a session.
func (r *Runner) History(sessionID string) ([]core.Interaction, error) {
	return r.sessionStore.History(sessionID)
}

func (r *Runner) appendTranscript(interaction core.Interaction) {
	if err := r.sessionStore.Append(interaction.SessionID, interaction); err != nil {
		r.logger.Warn("transcript append failed for session %s: %v", interaction.SessionID, err)
	}
}
