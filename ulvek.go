// Package ulvek provides a high-level facade over the routed turn execution
// engine: a classifier step that selects one of four routes, a capability
// per route, and memory retrieval/commit wired around each turn. Most
// applications interact with this package by:
//  1. Creating an Ulvek via New() with a model (optionally overriding the
//     default in-memory stores)
//  2. Calling RunTurn once per user message
//
// The facade delegates orchestration to graph.Graph and runner.Runner while
// keeping setup ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply durable
// store implementations and a structured logger.
package ulvek

import (
	"context"

	"github.com/HellKaiser45/Ulvek/capability"
	"github.com/HellKaiser45/Ulvek/classifier"
	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/graph"
	"github.com/HellKaiser45/Ulvek/logging"
	"github.com/HellKaiser45/Ulvek/memory"
	"github.com/HellKaiser45/Ulvek/model"
	"github.com/HellKaiser45/Ulvek/runner"
	"github.com/HellKaiser45/Ulvek/session"
)

// Options configures the Ulvek instance.
type Options struct {
	// ClassifierModel backs the routing judgment. Defaults to the main model.
	ClassifierModel model.Model
	// Classifier replaces the model-backed classifier entirely.
	Classifier core.Classifier
	// Binding replaces the default four-route binding.
	Binding *capability.Binding
	// MemoryStore defaults to an in-memory implementation.
	MemoryStore core.MemoryStore
	// SessionStore defaults to an in-memory implementation.
	SessionStore session.Store
	// MemoryRequired makes memory retrieval failures fatal to the turn.
	MemoryRequired bool
	// RetrieveLimit caps injected memory snippets per turn.
	RetrieveLimit int
	// Logger defaults to NoOp.
	Logger logging.Logger
}

// Ulvek is the high-level facade aggregating classifier, capabilities,
// execution graph and turn runner.
type Ulvek struct {
	runner *runner.Runner
}

// New creates a fully wired instance around the given model. Any unset
// service is initialized with an in-memory implementation.
func New(m model.Model, optFns ...func(o *Options)) *Ulvek {
	opts := Options{
		MemoryStore:   memory.NewInMemoryStore(),
		SessionStore:  session.NewInMemoryStore(),
		RetrieveLimit: 5,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	cls := opts.Classifier
	if cls == nil {
		judged := opts.ClassifierModel
		if judged == nil {
			judged = m
		}
		cls = classifier.NewModelClassifier(judged, func(o *classifier.Options) {
			o.Logger = opts.Logger
		})
	}

	binding := opts.Binding
	if binding == nil {
		binding = capability.DefaultBinding(m, func(o *capability.DefaultOptions) {
			o.Logger = opts.Logger
		})
	}

	g := graph.New(cls, binding, func(o *graph.Options) { o.Logger = opts.Logger })

	r := runner.New(g, func(o *runner.Options) {
		o.MemoryStore = opts.MemoryStore
		o.SessionStore = opts.SessionStore
		o.MemoryRequired = opts.MemoryRequired
		o.RetrieveLimit = opts.RetrieveLimit
		o.Logger = opts.Logger
	})

	return &Ulvek{runner: r}
}

// RunTurn executes one complete request/response cycle for a session.
func (u *Ulvek) RunTurn(ctx context.Context, sessionID, request string) (runner.FinalAnswer, error) {
	return u.runner.RunTurn(ctx, sessionID, request)
}

// History returns the recorded transcript for a session.
func (u *Ulvek) History(sessionID string) ([]core.Interaction, error) {
	return u.runner.History(sessionID)
}

// Runner exposes the underlying turn runner for advanced wiring.
func (u *Ulvek) Runner() *runner.Runner { return u.runner }
