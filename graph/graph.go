package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HellKaiser45/Ulvek/capability"
	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/logging"
)

// Options holds configuration overrides passed to New().
type Options struct {
	// Logger receives phase transitions. Defaults to NoOp.
	Logger logging.Logger
}

// Graph sequences one turn: classify strictly before dispatch, dispatch
// strictly before returning. It holds no per-turn state itself and is safe
// for concurrent use by any number of in-flight turns; all mutable state
// lives in the TurnState each run owns exclusively.
type Graph struct {
	classifier core.Classifier
	binding    *capability.Binding
	logger     logging.Logger
}

// New constructs a Graph over a classifier and a capability binding.
func New(classifier core.Classifier, binding *capability.Binding, optFns ...func(o *Options)) *Graph {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Graph{classifier: classifier, binding: binding, logger: opts.Logger}
}

// Run constructs a fresh TurnState and drives it from START to a terminal
// phase, returning the terminal outcome. It blocks until the selected
// capability completes or fails; there is no partial result contract. This
// is the single entry point for external callers.
func (g *Graph) Run(ctx context.Context, request string, memoryContext []core.Snippet) (core.Result, error) {
	return g.Drive(ctx, NewTurnState(request, memoryContext))
}

// Drive advances st from its current phase to a terminal phase. A state
// that is already terminal fails with *core.ReuseError without invoking any
// capability; one TurnState serves exactly one turn.
func (g *Graph) Drive(ctx context.Context, st *TurnState) (core.Result, error) {
	if st.Terminal() {
		return core.Result{}, &core.ReuseError{Phase: st.Phase().String()}
	}
	if st.Phase() != PhaseStart {
		// A state can also be abandoned mid-drive by a panic upstream; it is
		// equally unusable.
		return core.Result{}, &core.ReuseError{Phase: st.Phase().String()}
	}

	start := time.Now()

	route, err := g.classifier.Classify(ctx, st.Request(), st.MemoryContext())
	if err != nil {
		err = ensureClassificationError(err)
		st.fail(err)
		g.logger.Error("turn %s failed during classification: %v", st.ID(), err)
		return core.Result{}, err
	}
	if err := st.setRoute(route); err != nil {
		st.fail(err)
		return core.Result{}, err
	}
	g.logger.Debug("turn %s classified as %s", st.ID(), route)

	st.phase = PhaseDispatched
	result, err := g.binding.Dispatch(ctx, route, st.Request(), st.MemoryContext())
	if err != nil {
		st.fail(err)
		g.logger.Error("turn %s failed during dispatch: %v", st.ID(), err)
		return core.Result{}, err
	}

	result.TurnID = st.ID()
	if err := st.setResult(result); err != nil {
		st.fail(err)
		return core.Result{}, err
	}
	g.logger.Info("turn %s done via %s in %s", st.ID(), route, time.Since(start))
	return result, nil
}

// ensureClassificationError guarantees classifier failures surface as
// *core.ClassificationError even when a custom classifier returns a plain
// error.
func ensureClassificationError(err error) error {
	var ce *core.ClassificationError
	if errors.As(err, &ce) {
		return err
	}
	return &core.ClassificationError{Cause: err}
}

// String describes the graph topology for debugging.
func (g *Graph) String() string {
	return fmt.Sprintf("graph(classify -> dispatch over %v)", g.binding.Routes())
}
